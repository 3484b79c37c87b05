package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
)

// Renewer exchanges a refresh token for a new access token.
type Renewer interface {
	Renew(ctx context.Context, refreshToken string) (string, error)
}

// RenewerFunc adapts a function to the Renewer interface.
type RenewerFunc func(ctx context.Context, refreshToken string) (string, error)

func (f RenewerFunc) Renew(ctx context.Context, refreshToken string) (string, error) {
	return f(ctx, refreshToken)
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// HTTPRenewer calls the backend renewal endpoint directly, outside the
// gateway, so a failing renewal can never trigger another renewal.
type HTTPRenewer struct {
	url    string
	client *http.Client
}

// NewHTTPRenewer targets baseURL+path, e.g. "http://localhost/api" + "/token/refresh/".
func NewHTTPRenewer(baseURL, path string, client *http.Client) *HTTPRenewer {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPRenewer{
		url:    strings.TrimRight(baseURL, "/") + path,
		client: client,
	}
}

func (r *HTTPRenewer) Renew(ctx context.Context, refreshToken string) (string, error) {
	payload, err := json.Marshal(refreshRequest{Refresh: refreshToken})
	if err != nil {
		return "", fmt.Errorf("encode refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read refresh response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	var out refreshResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: decode refresh response: %w", apperrors.ErrInvalidResponse, err)
	}
	if out.Access == "" {
		return "", fmt.Errorf("%w: refresh response has no access token", apperrors.ErrInvalidResponse)
	}
	return out.Access, nil
}
