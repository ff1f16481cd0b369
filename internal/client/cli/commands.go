package cli

import (
	"context"

	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
)

// Login prompts for credentials, then follows the redirect to the directory.
func (a *App) Login(ctx context.Context) error {
	if err := a.loginView(ctx); err != nil {
		a.queue.Drop()
		return err
	}
	return a.follow(ctx)
}

// Logout ends the session. In the REPL the login view opens right away.
func (a *App) Logout(ctx context.Context) error {
	err := a.session.Logout(ctx)
	a.println("Logged out.")
	if !a.interactive {
		a.queue.Drop()
		return err
	}
	if ferr := a.follow(ctx); err == nil {
		err = ferr
	}
	return err
}

// List shows the directory filtered by query. An empty query shows all.
func (a *App) List(ctx context.Context, query string) error {
	a.query = query
	return a.open(ctx, common.PathEntryDetails)
}

// Group restricts the directory to one QR identifier; "" clears it.
func (a *App) Group(ctx context.Context, qr string) error {
	a.filter = models.QR(qr)
	return a.open(ctx, common.PathEntryDetails)
}

// Add opens the add-contact form, optionally bound to a QR id as a deep
// link would.
func (a *App) Add(ctx context.Context, qrid string) error {
	path := common.PathAdd
	if qrid != "" {
		path += "/" + qrid
	}
	return a.open(ctx, path)
}

// Whoami prints the logged-in user.
func (a *App) Whoami(ctx context.Context) error {
	err := a.whoamiView(ctx)
	if ferr := a.follow(ctx); err == nil {
		err = ferr
	}
	return err
}

// status is shown in the REPL prompt.
func (a *App) status(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return ""
	}
	user := a.session.GetUser(ctx)
	for _, k := range []string{"email", "name", "username"} {
		if v, ok := user[k].(string); ok && v != "" {
			return "(" + v + ")"
		}
	}
	return "(logged in)"
}
