package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/qrcontacts/internal/client/directory"
	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/dmitrijs2005/qrcontacts/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// fail shows err to the user and returns it.
func (a *App) fail(err error) error {
	a.println(userMessage(err))
	return err
}

func userMessage(err error) string {
	var ce *common.CredentialsError
	switch {
	case errors.As(err, &ce):
		return "Login failed: " + ce.Message
	case errors.Is(err, common.ErrSessionExpired):
		return common.ErrSessionExpired.Error()
	case errors.Is(err, common.ErrConnectivity):
		return common.ErrConnectivity.Error()
	case errors.Is(err, common.ErrUnauthenticated):
		return "Please login first."
	default:
		return err.Error()
	}
}

// loginView asks for credentials and opens the directory on success.
func (a *App) loginView(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		return a.fail(fmt.Errorf("%w: email and password required", common.ErrValidation))
	}

	if _, err := a.session.Login(ctx, email, password); err != nil {
		return a.fail(err)
	}

	a.println("Login successful")
	a.queue.RedirectTo(common.PathEntryDetails)
	return nil
}

// directoryView fetches every entry and prints the grouped listing for the
// current query and QR filter.
func (a *App) directoryView(ctx context.Context) error {
	return a.guard.Activate(ctx, "entry-details", func(ctx context.Context) error {
		list, err := a.entries.FetchAll(ctx)
		if err != nil {
			return a.fail(err)
		}
		a.printGroups(directory.Aggregate(list, a.query, a.filter), len(list))
		return nil
	})
}

func (a *App) printGroups(groups []directory.Group, total int) {
	shown := 0
	for _, g := range groups {
		shown += len(g.Entries)
	}

	var scope []string
	if a.query != "" {
		scope = append(scope, fmt.Sprintf("matching %q", a.query))
	}
	if a.filter.IsSet() {
		scope = append(scope, "in QR "+a.filter.String())
	}
	header := fmt.Sprintf("%d of %d entries", shown, total)
	if len(scope) > 0 {
		header += " " + strings.Join(scope, " ")
	}
	a.println(a.styles.title.Render(header))

	if len(groups) == 0 {
		a.println("No entries found.")
		return
	}

	for _, g := range groups {
		label := "QR " + g.Key
		if g.Ungrouped {
			label = "No QR"
		}
		a.println(a.styles.group(g.Color).Render(fmt.Sprintf("%s (%d)", label, len(g.Entries))))
		for _, e := range g.Entries {
			a.printf("  %-28s %s\n", e.Name, e.Mobile)
		}
	}
}

// addView collects a new contact and submits it. qrid comes from a deep
// link; without one the user may type it.
func (a *App) addView(ctx context.Context, qrid *int64) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	mobile, err := getSimpleText(a.reader, "Enter mobile", a.out)
	if err != nil {
		return err
	}

	if qrid == nil {
		raw, err := getSimpleText(a.reader, "Enter QR id (empty for none)", a.out)
		if err != nil {
			return err
		}
		if raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return a.fail(fmt.Errorf("%w: QR id must be a number", common.ErrValidation))
			}
			qrid = &n
		}
	} else {
		a.printf("QR id: %d\n", *qrid)
	}

	if err := a.entries.Insert(ctx, models.NewEntry{Name: name, Mobile: mobile, QRID: qrid}); err != nil {
		return a.fail(err)
	}
	a.println("Contact saved.")
	return nil
}

// whoamiView prints the cached user record, without the token.
func (a *App) whoamiView(ctx context.Context) error {
	return a.guard.Activate(ctx, "whoami", func(ctx context.Context) error {
		user := a.session.GetUser(ctx)
		keys := make([]string, 0, len(user))
		for k := range user {
			if k != common.TokenKey {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)

		if len(keys) == 0 {
			a.println("Logged in.")
			return nil
		}
		for _, k := range keys {
			a.printf("%s: %v\n", k, user[k])
		}
		return nil
	})
}
