package entries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/qrcontacts/internal/client/client"
	"github.com/dmitrijs2005/qrcontacts/internal/client/models"
	"github.com/dmitrijs2005/qrcontacts/internal/client/nav"
	"github.com/dmitrijs2005/qrcontacts/internal/common"
	"github.com/dmitrijs2005/qrcontacts/internal/logging"
)

const msgSubmitFailed = "Failed to submit. Please try again."

// Poster is the part of the gateway the repository uses.
type Poster interface {
	Post(ctx context.Context, endpoint string, body any) (*client.Response, error)
}

// TokenSource reports the current session token.
type TokenSource interface {
	GetToken(ctx context.Context) string
}

// HTTPRepository implements Repository. Reads go through the request
// gateway; inserts target an unprotected endpoint and use the bare
// transport, so no token is sent and a rejection never ends the session.
type HTTPRepository struct {
	gw        Poster
	transport client.Transport
	session   TokenSource
	nav       nav.Navigator
	log       logging.Logger
}

// NewHTTPRepository returns a new HTTPRepository.
func NewHTTPRepository(gw Poster, t client.Transport, session TokenSource, n nav.Navigator, log logging.Logger) *HTTPRepository {
	return &HTTPRepository{gw: gw, transport: t, session: session, nav: n, log: log.With("component", "entries")}
}

// FetchAll reads the complete entry set. Without a session it fails with
// ErrUnauthenticated and asks for the login view without touching the
// network. A session rejected by the server is reported the same way; the
// gateway has already ended it.
func (r *HTTPRepository) FetchAll(ctx context.Context) ([]models.Entry, error) {
	if r.session.GetToken(ctx) == "" {
		r.nav.RedirectTo(common.PathLogin)
		return nil, common.ErrUnauthenticated
	}

	resp, err := r.gw.Post(ctx, common.EndpointEntriesRead, map[string]any{})
	if err != nil {
		if errors.Is(err, common.ErrSessionExpired) {
			return nil, fmt.Errorf("%w: %w", common.ErrUnauthenticated, err)
		}
		return nil, err
	}
	if !resp.OK() {
		return nil, common.NewServerError(resp.Status, resp.Message())
	}

	list, rejected, err := decodeEntries(resp)
	if err != nil {
		return nil, err
	}
	for _, rj := range rejected {
		r.log.Warn(ctx, "entry rejected", "index", rj.index, "reason", rj.reason)
	}
	r.log.Debug(ctx, "entries fetched", "count", len(list), "rejected", len(rejected))
	return list, nil
}

// Insert validates e and posts it to the insert endpoint without
// credentials.
func (r *HTTPRepository) Insert(ctx context.Context, e models.NewEntry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}

	h := http.Header{}
	h.Set(common.ContentTypeHeaderName, common.ContentTypeJSON)
	resp, err := r.transport.Do(ctx, &client.Request{
		Method: http.MethodPost,
		Path:   common.EndpointEntryInsert,
		Header: h,
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		r.log.Warn(ctx, "insert request failed", "error", err)
		return err
	}
	if !resp.OK() {
		r.log.Warn(ctx, "insert rejected", "status", resp.Status, "message", resp.Message())
		return common.NewServerError(resp.Status, msgSubmitFailed)
	}

	r.log.Info(ctx, "entry submitted", "name", e.Name)
	return nil
}

// ParseQRID extracts the QR identifier from a deep link such as "/add/42".
// It reports false when the last path segment is not an integer.
func ParseQRID(path string) (int64, bool) {
	path = strings.TrimRight(path, "/")
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(path[i+1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
