// Package common defines the error taxonomy and wire constants shared by the
// qrcontacts client layers. Callers should use errors.Is / errors.As to match
// these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Session errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("Session expired. Please login again.")

	// Transport errors: no response was received at all.
	ErrConnectivity = errors.New("Could not connect to server. Please check your internet connection.")

	// Token errors. ErrMalformedToken never leaves the session manager.
	ErrMalformedToken = errors.New("malformed token")

	// Validation errors for records leaving or entering the client.
	ErrValidation = errors.New("validation error")
)

// CredentialsError is returned by login when the server rejects the
// credentials. Message is the server-provided text, or a generic one.
type CredentialsError struct {
	Message string
}

func (e *CredentialsError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalidCredentials) hold for any CredentialsError.
func (e *CredentialsError) Is(target error) bool {
	return target == ErrInvalidCredentials
}

// ServerError is a non-success response reported by the remote service.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("Server error: %s", e.Message)
}

// NewCredentialsError builds a CredentialsError, falling back to the generic
// message when the server did not provide one.
func NewCredentialsError(msg string) *CredentialsError {
	if msg == "" {
		msg = "Invalid credentials"
	}
	return &CredentialsError{Message: msg}
}

// NewServerError builds a ServerError, falling back to "Unknown error" when the
// server did not provide a message.
func NewServerError(status int, msg string) *ServerError {
	if msg == "" {
		msg = "Unknown error"
	}
	return &ServerError{Status: status, Message: msg}
}
