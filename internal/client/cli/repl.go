package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it;
// tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, query string) error
	Group(ctx context.Context, qr string) error
	Add(ctx context.Context, qrid string) error
	Whoami(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a. It returns
// on EOF, on "exit"/"quit", or when ctx is done. reader must be the one the
// views prompt with, so typed-ahead input is not split between buffers.
//
//	Not logged in:
//	  - help              show available commands
//	  - login             authenticate
//	  - add [qrid]        register a contact
//	  - exit | quit       leave the program
//
//	Logged in, additionally:
//	  - list [text]       show the directory, filtered by text
//	  - group [qrid]      restrict the directory to one QR id; no argument clears
//	  - whoami            show the logged-in user
//	  - logout            end the session
//
// Errors returned by command handlers are ignored here; handlers show their
// own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("qr %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist [text], group [qrid], add [qrid], whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, add [qrid], exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list", "search":
			_ = a.List(ctx, strings.Join(args, " "))

		case "group":
			qr := ""
			if len(args) > 0 {
				qr = args[0]
			}
			_ = a.Group(ctx, qr)

		case "add":
			qrid := ""
			if len(args) > 0 {
				qrid = args[0]
			}
			_ = a.Add(ctx, qrid)

		case "whoami":
			_ = a.Whoami(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
