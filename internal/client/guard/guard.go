// Package guard gates protected views behind an authenticated session.
package guard

import (
	"context"

	"github.com/dmitrijs2005/qrcontacts/internal/client/nav"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/dmitrijs2005/qrcontacts/internal/logging"
)

// Authenticator reports whether the session is usable. It may end an
// expired session as a side effect.
type Authenticator interface {
	IsAuthenticated(ctx context.Context) bool
}

// View renders a protected screen.
type View func(ctx context.Context) error

type Guard struct {
	auth Authenticator
	nav  nav.Navigator
	log  logging.Logger
}

func New(auth Authenticator, n nav.Navigator, log logging.Logger) *Guard {
	return &Guard{auth: auth, nav: n, log: log.With("component", "guard")}
}

// Activate checks the session once and runs view only when it is active.
// Otherwise it redirects to the login view and returns ErrUnauthenticated.
func (g *Guard) Activate(ctx context.Context, name string, view View) error {
	if !g.auth.IsAuthenticated(ctx) {
		g.log.Debug(ctx, "access denied", "view", name)
		g.nav.RedirectTo(common.PathLogin)
		return common.ErrUnauthenticated
	}
	return view(ctx)
}
