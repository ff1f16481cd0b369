package client

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Header http.Header

	body []byte

	once   sync.Once
	parsed any
}

func NewResponse(status int, header http.Header, body []byte) *Response {
	if header == nil {
		header = http.Header{}
	}
	return &Response{Status: status, Header: header, body: body}
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

func (r *Response) Text() string {
	return string(r.body)
}

// JSON returns the decoded body. A malformed or empty body yields an empty
// object rather than an error. The result is computed once.
func (r *Response) JSON() any {
	r.once.Do(func() {
		var v any
		if err := json.Unmarshal(r.body, &v); err != nil || v == nil {
			v = map[string]any{}
		}
		r.parsed = v
	})
	return r.parsed
}

// Message returns the "message" field of a JSON object body, or "".
func (r *Response) Message() string {
	obj, ok := r.JSON().(map[string]any)
	if !ok {
		return ""
	}
	msg, _ := obj["message"].(string)
	return msg
}

// DecodeJSON strictly decodes the body into v.
func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal(r.body, v)
}
