package client

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/dmitrijs2005/qrcontacts/internal/logging"
	"github.com/google/uuid"
)

// Session is the part of the session manager the gateway needs.
type Session interface {
	GetToken(ctx context.Context) string
	Logout(ctx context.Context) error
}

// Gateway sends authenticated requests on behalf of the current session.
type Gateway struct {
	transport Transport
	session   Session
	log       logging.Logger
	newID     func() string
}

func NewGateway(t Transport, s Session, log logging.Logger) *Gateway {
	return &Gateway{
		transport: t,
		session:   s,
		log:       log.With("component", "gateway"),
		newID:     uuid.NewString,
	}
}

// Send JSON-encodes body (nil sends no body) and performs the call.
func (g *Gateway) Send(ctx context.Context, endpoint, method string, body any) (*Response, error) {
	r, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	h.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
	return g.do(ctx, &Request{Method: method, Path: endpoint, Header: h, Body: r})
}

// Upload posts body unmodified with the caller's content type, e.g. a
// multipart form.
func (g *Gateway) Upload(ctx context.Context, endpoint string, body io.Reader, contentType string) (*Response, error) {
	h := http.Header{}
	if contentType != "" {
		h.Set(common.ContentTypeHeaderName, contentType)
	}
	return g.do(ctx, &Request{Method: http.MethodPost, Path: endpoint, Header: h, Body: body})
}

func (g *Gateway) Get(ctx context.Context, endpoint string) (*Response, error) {
	return g.Send(ctx, endpoint, http.MethodGet, nil)
}

func (g *Gateway) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	return g.Send(ctx, endpoint, http.MethodPost, body)
}

func (g *Gateway) Put(ctx context.Context, endpoint string, body any) (*Response, error) {
	return g.Send(ctx, endpoint, http.MethodPut, body)
}

func (g *Gateway) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return g.Send(ctx, endpoint, http.MethodDelete, nil)
}

func (g *Gateway) do(ctx context.Context, req *Request) (*Response, error) {
	if token := g.session.GetToken(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	id := g.newID()
	req.Header.Set(common.RequestIDHeaderName, id)

	start := time.Now()
	resp, err := g.transport.Do(ctx, req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "request_id", id, "method", req.Method, "endpoint", req.Path, "error", err)
		return nil, err
	}
	g.log.Debug(ctx, "request done", "request_id", id, "method", req.Method, "endpoint", req.Path,
		"status", resp.Status, "elapsed", time.Since(start))

	if resp.Status == http.StatusUnauthorized || resp.Status == http.StatusForbidden {
		g.log.Info(ctx, "authorization denied, ending session", "request_id", id, "status", resp.Status)
		if err := g.session.Logout(ctx); err != nil {
			g.log.Error(ctx, "logout after denial failed", "error", err)
		}
		return nil, common.ErrSessionExpired
	}

	return resp, nil
}
