package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/qrcontacts/internal/client/client"
	"github.com/dmitrijs2005/qrcontacts/internal/client/config"
	"github.com/dmitrijs2005/qrcontacts/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/dmitrijs2005/qrcontacts/internal/logging"
)

type route struct {
	status int
	body   string
}

// routeTransport answers by request path and records every call.
type routeTransport struct {
	mu     sync.Mutex
	routes map[string]route
	calls  []string
	bodies map[string]string
	auth   map[string]string
}

func newRouteTransport(routes map[string]route) *routeTransport {
	return &routeTransport{routes: routes, bodies: map[string]string{}, auth: map[string]string{}}
}

func (r *routeTransport) Do(ctx context.Context, req *client.Request) (*client.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, req.Path)
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		r.bodies[req.Path] = string(b)
	}
	r.auth[req.Path] = req.Header.Get(common.AuthorizationHeaderName)
	rt, ok := r.routes[req.Path]
	if !ok {
		return client.NewResponse(404, nil, []byte(`{"message":"not found"}`)), nil
	}
	return client.NewResponse(rt.status, nil, []byte(rt.body)), nil
}

func (r *routeTransport) count(path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == path {
			n++
		}
	}
	return n
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DBPath = config.MemoryDB
	c.Color = false
	return c
}

// newTestApp wires an App over tr and store; input is what the user types.
func newTestApp(t *testing.T, tr client.Transport, store credentials.Repository, input string) (*App, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t)
	out := &bytes.Buffer{}
	return newApp(testConfig(), store, tr, logging.Nop(), strings.NewReader(input), out), out
}

// stubTerminal makes password prompts read from the input stream.
func stubTerminal(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

const loginOK = `{"token":"tok-1","email":"ann@example.com","name":"Ann"}`

const entriesBody = `[
	{"name":"Bob","mobile":"222","qr":5},
	{"name":"Amy","mobile":"111","qr":"5"},
	{"name":"Zoe","mobile":"333","qr":null}
]`
