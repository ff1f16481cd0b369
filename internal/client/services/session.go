package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/qrcontacts/internal/client/client"
	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/dmitrijs2005/qrcontacts/internal/client/nav"
	"github.com/dmitrijs2005/qrcontacts/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/dmitrijs2005/qrcontacts/internal/logging"
)

// State is the derived authentication state of the session.
type State int

const (
	Unauthenticated State = iota
	Active
	Expired
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Expired:
		return "expired"
	default:
		return "unauthenticated"
	}
}

// SessionManager owns the credential store. It is the only writer of the
// token and user records.
//
// Contract:
//   - Login: authenticate remotely and persist token and user together.
//   - Logout: clear the store and redirect to the login view.
//   - GetToken / GetUser: read the persisted credential, never failing.
//   - Inspect: derive the state without side effects.
//   - CurrentState: like Inspect, but ends an expired session.
type SessionManager struct {
	transport client.Transport
	store     credentials.Repository
	nav       nav.Navigator
	log       logging.Logger
	now       func() time.Time
}

// Option customizes a SessionManager.
type Option func(*SessionManager)

// WithClock replaces the wall clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *SessionManager) { m.now = now }
}

// NewSessionManager wires a session manager. Login goes straight to the
// transport: the credential exchange must not carry a stale bearer token.
func NewSessionManager(t client.Transport, store credentials.Repository, n nav.Navigator, log logging.Logger, opts ...Option) *SessionManager {
	m := &SessionManager{
		transport: t,
		store:     store,
		nav:       n,
		log:       log.With("component", "session"),
		now:       time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email and password for a token. On success the token and
// the whole response object (as the user record) are stored in one write.
// On any failure the store is left untouched.
func (m *SessionManager) Login(ctx context.Context, email string, password []byte) (models.Credential, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: string(password)})
	if err != nil {
		return models.Credential{}, fmt.Errorf("encode login request: %w", err)
	}

	h := http.Header{}
	h.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
	resp, err := m.transport.Do(ctx, &client.Request{
		Method: http.MethodPost,
		Path:   common.EndpointLogin,
		Header: h,
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		m.log.Warn(ctx, "login request failed", "email", email, "error", err)
		return models.Credential{}, err
	}

	if !resp.OK() {
		m.log.Info(ctx, "login rejected", "email", email, "status", resp.Status)
		return models.Credential{}, common.NewCredentialsError(resp.Message())
	}

	data, _ := resp.JSON().(map[string]any)
	if data == nil {
		data = map[string]any{}
	}
	token, _ := data["token"].(string)
	token = strings.TrimSpace(token)
	if token == "" {
		m.log.Warn(ctx, "login response without token", "status", resp.Status)
		return models.Credential{}, common.NewServerError(resp.Status, "login response did not include a token")
	}

	userJSON, err := json.Marshal(data)
	if err != nil {
		return models.Credential{}, fmt.Errorf("encode user record: %w", err)
	}

	if err := m.store.SetMany(ctx, map[string]string{
		common.TokenKey: token,
		common.UserKey:  string(userJSON),
	}); err != nil {
		return models.Credential{}, fmt.Errorf("save credential: %w", err)
	}

	m.log.Info(ctx, "logged in", "email", email)
	return models.Credential{Token: token, User: models.User(data)}, nil
}

// Logout removes every stored credential and sends the user to the login
// view. The redirect happens even when clearing the store fails.
func (m *SessionManager) Logout(ctx context.Context) error {
	err := m.store.Clear(ctx)
	m.nav.RedirectTo(common.PathLogin)
	if err != nil {
		m.log.Error(ctx, "clear credentials failed", "error", err)
		return fmt.Errorf("clear credentials: %w", err)
	}
	m.log.Info(ctx, "logged out")
	return nil
}

// GetToken returns the stored token, or "" when there is none or the store
// cannot be read.
func (m *SessionManager) GetToken(ctx context.Context) string {
	v, ok, err := m.store.Get(ctx, common.TokenKey)
	if err != nil {
		m.log.Warn(ctx, "read token failed", "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

// GetUser returns the stored user record. A missing or unparseable record
// yields an empty User.
func (m *SessionManager) GetUser(ctx context.Context) models.User {
	v, ok, err := m.store.Get(ctx, common.UserKey)
	if err != nil {
		m.log.Warn(ctx, "read user failed", "error", err)
		return models.User{}
	}
	if !ok {
		return models.User{}
	}
	var u models.User
	if err := json.Unmarshal([]byte(v), &u); err != nil || u == nil {
		return models.User{}
	}
	return u
}

// Inspect derives the session state from the stored token without
// changing anything. A token whose payload cannot be decoded is Active:
// the server remains the authority and will reject it if needed.
func (m *SessionManager) Inspect(ctx context.Context) State {
	token := m.GetToken(ctx)
	if token == "" {
		return Unauthenticated
	}

	exp, ok, err := tokenExpiry(token)
	if err != nil {
		if errors.Is(err, common.ErrMalformedToken) {
			m.log.Debug(ctx, "token payload not decodable", "error", err)
		}
		return Active
	}
	if ok && expired(exp, m.now()) {
		return Expired
	}
	return Active
}

// CurrentState returns Unauthenticated or Active. An expired session is
// ended (logout and redirect) and reported as Unauthenticated.
func (m *SessionManager) CurrentState(ctx context.Context) State {
	st := m.Inspect(ctx)
	if st != Expired {
		return st
	}
	m.log.Info(ctx, "session expired")
	_ = m.Logout(ctx)
	return Unauthenticated
}

// IsAuthenticated reports whether CurrentState is Active.
func (m *SessionManager) IsAuthenticated(ctx context.Context) bool {
	return m.CurrentState(ctx) == Active
}
