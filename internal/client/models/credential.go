package models

// User is the opaque user record returned by the login endpoint.
type User map[string]any

// Credential is what a successful login leaves behind: a non-empty token
// and the user record that came with it.
type Credential struct {
	Token string
	User  User
}
