package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func (f *fakeExec) List(ctx context.Context, query string) error {
	f.calls = append(f.calls, "list")
	f.args = append(f.args, query)
	return nil
}

func (f *fakeExec) Group(ctx context.Context, qr string) error {
	f.calls = append(f.calls, "group")
	f.args = append(f.args, qr)
	return nil
}

func (f *fakeExec) Add(ctx context.Context, qrid string) error {
	f.calls = append(f.calls, "add")
	f.args = append(f.args, qrid)
	return nil
}

func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			parts = append(parts, v.(string))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	silence(t)

	input := strings.Join([]string{
		"help",
		"login",
		"list",
		"l amy smith",
		"search 22",
		"group 5",
		"group",
		"add",
		"add 42",
		"whoami",
		"logout",
		"",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	require.Equal(t, []string{"login", "list", "list", "list", "group", "group", "add", "add", "whoami", "logout"}, exec.calls)
	require.Equal(t, []string{"", "amy smith", "22", "5", "", "", "42"}, exec.args)
}

func TestRunREPL_HelpAndUnknown(t *testing.T) {
	lines := silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(ann)" }, bufio.NewReader(strings.NewReader("help\nfoobar\nquit\n")))

	require.Empty(t, exec.calls)
	require.Contains(t, *lines, "qr (ann)> ")
	require.Contains(t, *lines, "Available commands: login, add [qrid], exit")
	require.Contains(t, *lines, "Unknown command: foobar")
	require.Contains(t, *lines, "Bye!")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login")))
	require.Equal(t, []string{"login"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")))
	require.Empty(t, exec.calls)
}
