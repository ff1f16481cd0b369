package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/qrcontacts/internal/client/repositories/entries"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
)

// maxHops bounds how many redirects one command may follow.
const maxHops = 5

var errTooManyRedirects = errors.New("too many redirects")

// open requests path and follows it.
func (a *App) open(ctx context.Context, path string) error {
	a.queue.RedirectTo(path)
	return a.follow(ctx)
}

// follow renders pending paths in order until none is left. Back-to-back
// requests for the same path render once. Errors from views are shown to the
// user by the views themselves; follow returns the first one.
func (a *App) follow(ctx context.Context) error {
	var (
		first error
		last  string
	)
	for hops := 0; ; {
		p, ok := a.queue.Next()
		if !ok {
			return first
		}
		if p == last {
			continue
		}
		if hops == maxHops {
			a.queue.Drop()
			a.log.Warn(ctx, "redirect limit reached", "path", p)
			if first == nil {
				first = errTooManyRedirects
			}
			return first
		}
		hops++
		last = p

		if err := a.render(ctx, p); err != nil && first == nil {
			first = err
		}
	}
}

// render shows the view registered for path.
func (a *App) render(ctx context.Context, path string) error {
	a.log.Debug(ctx, "navigate", "path", path)

	switch {
	case path == common.PathRoot:
		a.queue.RedirectTo(common.PathAdd)
		return nil
	case path == common.PathLogin:
		if !a.interactive {
			a.println("Not logged in. Run 'qrcontacts login' first.")
			return nil
		}
		return a.loginView(ctx)
	case path == common.PathEntryDetails:
		return a.directoryView(ctx)
	case path == common.PathAdd:
		return a.addView(ctx, nil)
	case strings.HasPrefix(path, common.PathAdd+"/"):
		id, ok := entries.ParseQRID(path)
		if !ok {
			return a.fail(fmt.Errorf("invalid QR id in %q", path))
		}
		return a.addView(ctx, &id)
	default:
		return a.fail(fmt.Errorf("no view for %q", path))
	}
}
