// Package budget is a typed client for the event budget REST API.
//
// Every call goes through a gateway.Gateway, so requests carry the current
// session token and survive one access-token expiry transparently. Non-2xx
// responses are returned as *APIError, whose body can be handed to
// errorfmt.Format for display.
package budget

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-budget-client/gateway"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
)

// Sender dispatches a request. *gateway.Gateway implements it.
type Sender interface {
	Send(ctx context.Context, req *gateway.Request) (*gateway.Response, error)
}

// Patch holds the fields of a partial update, keyed by their API name.
type Patch map[string]any

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Payload returns the response body.
func (e *APIError) Payload() []byte {
	return e.Body
}

// Is maps a 404 onto ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == apperrors.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// StatusCode returns the HTTP status of the first *APIError in err's chain,
// or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if apperrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Client is safe for concurrent use.
type Client struct {
	sender Sender
}

var _ AccountAPI = (*Client)(nil)

// New creates a Client over sender, normally a *gateway.Gateway.
func New(sender Sender) (*Client, error) {
	if sender == nil {
		return nil, errors.New("[budget.New] sender is required")
	}
	return &Client{sender: sender}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*gateway.Response, error) {
	req, err := gateway.NewRequest(method, path, body)
	if err != nil {
		return nil, err
	}
	req.Query = query

	resp, err := c.sender.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &APIError{StatusCode: resp.StatusCode, Method: method, Path: path, Body: resp.Body}
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body Patch, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func list[T any](ctx context.Context, c *Client, path string, query url.Values) (*Page[T], error) {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodePage[T](resp.Body)
}

func itemPath(collection string, id int64) string {
	return fmt.Sprintf("%s%d/", collection, id)
}
