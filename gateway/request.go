package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
)

// Request describes one outbound call. A Request carries its own "retried
// for auth" marker, so it must not be sent concurrently from two goroutines.
type Request struct {
	Method string
	Path   string // relative to the gateway base URL, e.g. "/events/"
	Query  url.Values
	Header http.Header
	Body   []byte

	retriedForAuth bool
	sentToken      string
}

// NewRequest builds a Request, encoding body as JSON when it is not nil.
func NewRequest(method, path string, body any) (*Request, error) {
	req := &Request{
		Method: method,
		Path:   path,
		Header: make(http.Header),
	}
	if body == nil {
		return req, nil
	}
	if raw, ok := body.([]byte); ok {
		req.Body = raw
		return req, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encode body for %s %s: %w", apperrors.ErrInvalidRequest, method, path, err)
	}
	req.Body = data
	return req, nil
}

// RetriedForAuth reports whether the request has already been replayed
// after a token renewal.
func (r *Request) RetriedForAuth() bool {
	return r.retriedForAuth
}

// Authorization returns the Authorization header the caller or a renewal
// put on the descriptor.
func (r *Request) Authorization() string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get("Authorization")
}

func (r *Request) setBearer(access string) {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set("Authorization", "Bearer "+access)
}

// Response is a fully read backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 || v == nil {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: decode body: %w", apperrors.ErrInvalidResponse, err)
	}
	return nil
}
