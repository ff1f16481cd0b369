package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/qrcontacts/internal/client/client"
	"github.com/dmitrijs2005/qrcontacts/internal/client/config"
	"github.com/dmitrijs2005/qrcontacts/internal/client/guard"
	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/dmitrijs2005/qrcontacts/internal/client/nav"
	"github.com/dmitrijs2005/qrcontacts/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/qrcontacts/internal/client/repositories/entries"
	"github.com/dmitrijs2005/qrcontacts/internal/client/services"
	"github.com/dmitrijs2005/qrcontacts/internal/filex"
	"github.com/dmitrijs2005/qrcontacts/internal/logging"
)

// App holds the wired client and the state of the current view.
type App struct {
	config  *config.Config
	log     logging.Logger
	store   credentials.Repository
	session *services.SessionManager
	entries entries.Repository
	guard   *guard.Guard
	queue   *nav.Queue
	styles  *styles

	reader      *bufio.Reader
	out         io.Writer
	interactive bool

	// directory view state
	query  string
	filter models.QR
}

// NewApp opens the credential store named by c and wires every component.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	log, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing credential store", "path", c.DBPath, "error", err)
		return nil, err
	}

	t := client.NewHTTPTransport(c.ServerURL, c.RequestTimeout)
	return newApp(c, store, t, log, in, out), nil
}

func newApp(c *config.Config, store credentials.Repository, t client.Transport, log logging.Logger, in io.Reader, out io.Writer) *App {
	q := &nav.Queue{}
	sm := services.NewSessionManager(t, store, q, log)
	gw := client.NewGateway(t, sm, log)

	return &App{
		config:  c,
		log:     log,
		store:   store,
		session: sm,
		entries: entries.NewHTTPRepository(gw, t, sm, q, log),
		guard:   guard.New(sm, q, log),
		queue:   q,
		styles:  newStyles(lipgloss.NewRenderer(out), c.Color),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func openStore(ctx context.Context, path string) (credentials.Repository, error) {
	if path == config.MemoryDB {
		return credentials.NewMemoryRepository(), nil
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return credentials.OpenSQLite(ctx, path)
}

// Close releases the credential store.
func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.Inspect(ctx) == services.Active
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
