package cli

import (
	"context"
	"io"
	"strings"

	"github.com/dmitrijs2005/qrcontacts/internal/buildinfo"
	"github.com/dmitrijs2005/qrcontacts/internal/client/config"
	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/spf13/cobra"
)

// newAppFn is a test seam for NewApp.
var newAppFn = NewApp

// RunREPL starts the interactive session. It opens the directory first,
// which asks for a login when there is no active session.
func (a *App) RunREPL(ctx context.Context) error {
	a.interactive = true
	a.println("Welcome to qrcontacts (type 'help' for commands)")

	_ = a.open(ctx, common.PathEntryDetails)

	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
	return nil
}

// Execute builds the command tree, runs it with args and releases the app.
func Execute(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	var app *App
	defer func() {
		if app != nil {
			_ = app.Close()
		}
	}()

	if args == nil {
		args = []string{}
	}
	root := newRootCmd(in, out, &app)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

func newRootCmd(in io.Reader, out io.Writer, app **App) *cobra.Command {
	var flags *config.Flags

	root := &cobra.Command{
		Use:           "qrcontacts",
		Short:         "Register and browse QR contact entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			*app, err = newAppFn(cmd.Context(), cfg, in, out)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return (*app).RunREPL(cmd.Context())
		},
	}
	flags = config.BindFlags(root.PersistentFlags())

	var qr string
	list := &cobra.Command{
		Use:   "list [text...]",
		Short: "Show the directory, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			(*app).filter = models.QR(qr)
			return (*app).List(cmd.Context(), strings.Join(args, " "))
		},
	}
	list.Flags().StringVar(&qr, "qr", "", "only show entries with this QR id")

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start the interactive client (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).RunREPL(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "login",
			Short: "Log in and show the directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				(*app).interactive = true
				return (*app).Login(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "End the session and forget the stored credential",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).Logout(cmd.Context())
			},
		},
		list,
		&cobra.Command{
			Use:   "add [qrid]",
			Short: "Register a contact, optionally for a QR id",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				qrid := ""
				if len(args) == 1 {
					qrid = args[0]
				}
				return (*app).Add(cmd.Context(), qrid)
			},
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the logged-in user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return (*app).Whoami(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				buildinfo.PrintBuildData(cmd.OutOrStdout())
			},
		},
	)
	return root
}
