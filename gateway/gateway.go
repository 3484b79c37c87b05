// Package gateway sends authenticated requests to the budget backend.
//
// Every request carries the access token currently held by the session
// store. A 401 response triggers at most one silent renewal with the stored
// refresh token followed by a single replay of the original request. When
// renewal is impossible or fails, the session is cleared and the
// SessionTerminated hook is invoked so the application can send the user
// back to the login screen.
//
// Concurrent renewals for the same refresh token are coalesced: requests
// that hit a 401 while a renewal is in flight wait for its result instead
// of starting another one.
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/jrsteele09/go-budget-client/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	contentTypeJSON    = "application/json"
	requestIDHeader    = "X-Request-ID"
	defaultLoginPath   = "/login"
	defaultRefreshPath = "/token/refresh/"
)

// Gateway is safe for concurrent use.
type Gateway struct {
	baseURL      string
	store        session.Store
	tokens       oauth2.TokenSource
	client       *http.Client
	renewer      Renewer
	onTerminated SessionTerminated
	loginPath    string
	refreshPath  string
	userAgent    string

	renewals singleflight.Group
}

// New creates a Gateway for the API rooted at baseURL (e.g. "http://localhost/api").
func New(baseURL string, store session.Store, options ...Option) (*Gateway, error) {
	if baseURL == "" {
		return nil, errors.New("[gateway.New] baseURL is required")
	}
	if store == nil {
		return nil, errors.New("[gateway.New] session store is required")
	}

	g := &Gateway{
		baseURL:     strings.TrimRight(baseURL, "/"),
		store:       store,
		tokens:      session.TokenSource(store),
		client:      http.DefaultClient,
		loginPath:   defaultLoginPath,
		refreshPath: defaultRefreshPath,
	}

	for _, opt := range options {
		opt(g)
	}

	if g.renewer == nil {
		g.renewer = NewHTTPRenewer(g.baseURL, g.refreshPath, g.client)
	}
	return g, nil
}

// BaseURL returns the API root requests are resolved against.
func (g *Gateway) BaseURL() string {
	return g.baseURL
}

// Store returns the session store the gateway reads tokens from.
func (g *Gateway) Store() session.Store {
	return g.store
}

// Send dispatches req with the current access token.
//
// Any response other than 401 is returned unchanged, whatever its status.
// On 401 the request is renewed and replayed once; the replay's outcome is
// returned as is. A 401 that cannot be recovered yields a *StatusError and
// a failed renewal yields the renewal error, both after the session has
// been cleared. Transport failures are returned wrapped and never retried.
func (g *Gateway) Send(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", apperrors.ErrInvalidRequest)
	}

	resp, err := g.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}
	return g.handleUnauthorized(ctx, req, resp)
}

func (g *Gateway) handleUnauthorized(ctx context.Context, req *Request, resp *Response) (*Response, error) {
	unauthorized := &StatusError{StatusCode: resp.StatusCode, Body: resp.Body}

	refresh, err := g.store.GetRefreshToken()
	if err != nil {
		log.Err(err).Msg("Failed to read refresh token")
	}

	if req.retriedForAuth {
		unauthorized.Terminated = true
		g.terminate(ctx, unauthorized)
		return nil, unauthorized
	}
	if utils.Value(refresh) == "" {
		unauthorized.Terminated = true
		err := fmt.Errorf("%w: %w", apperrors.ErrNoRefreshToken, unauthorized)
		if req.sentToken == "" {
			// Nothing was signed in, e.g. a login with bad credentials.
			err = fmt.Errorf("%w: %w", apperrors.ErrNotAuthenticated, err)
		}
		g.terminate(ctx, err)
		return nil, err
	}

	req.retriedForAuth = true
	access, err := g.renew(ctx, *refresh, req.sentToken)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrTokenRenewal, ctxErr)
		}
		g.terminate(ctx, err)
		return nil, fmt.Errorf("%w: %w: %w", apperrors.ErrSessionTerminated, apperrors.ErrTokenRenewal, err)
	}

	req.setBearer(access)
	resp, err = g.dispatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return g.handleUnauthorized(ctx, req, resp)
	}
	return resp, nil
}

// renew returns a fresh access token, stored before it is returned. Callers
// sharing a refresh token share a single renewal; a caller whose request was
// sent with a token that has since been replaced reuses the replacement.
func (g *Gateway) renew(ctx context.Context, refresh, sentToken string) (string, error) {
	// The shared renewal outlives any single caller's cancellation; each
	// caller stops waiting on its own context.
	renewCtx := context.WithoutCancel(ctx)
	ch := g.renewals.DoChan(refresh, func() (interface{}, error) {
		current, err := g.store.GetAccessToken()
		if err == nil && utils.Value(current) != "" && utils.Value(current) != sentToken {
			log.Debug().Msg("Access token already renewed, reusing it")
			return *current, nil
		}

		log.Info().Msg("Access token rejected, renewing")
		access, err := g.renewer.Renew(renewCtx, refresh)
		if err != nil {
			return "", err
		}
		if err := g.store.SetAccessToken(access); err != nil {
			return "", fmt.Errorf("store renewed access token: %w", err)
		}
		return access, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			log.Warn().Err(res.Err).Msg("Token renewal failed")
			return "", res.Err
		}
		if res.Shared {
			log.Debug().Msg("Joined in-flight token renewal")
		}
		return res.Val.(string), nil
	}
}

func (g *Gateway) terminate(ctx context.Context, reason error) {
	if err := g.store.Clear(); err != nil {
		log.Err(err).Msg("Failed to clear session")
	}
	log.Warn().Str("login_path", g.loginPath).Msg("Session terminated")
	if g.onTerminated != nil {
		g.onTerminated(ctx, g.loginPath, reason)
	}
}

func (g *Gateway) dispatch(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := g.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	requestID := httpReq.Header.Get(requestIDHeader)

	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Str("request_id", requestID).Str("method", httpReq.Method).Str("path", req.Path).Msg("Request failed")
		return nil, fmt.Errorf("%s %s: %w", httpReq.Method, req.Path, err)
	}
	defer httpResp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", httpReq.Method, req.Path, err)
	}

	log.Debug().
		Str("request_id", requestID).
		Str("method", httpReq.Method).
		Str("path", req.Path).
		Int("status", httpResp.StatusCode).
		Bool("retried_for_auth", req.retriedForAuth).
		Msg("Request completed")

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

func (g *Gateway) buildHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	url := g.baseURL + req.Path
	if len(req.Query) > 0 {
		url += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", apperrors.ErrInvalidRequest, method, req.Path, err)
	}
	for key, values := range req.Header {
		httpReq.Header[key] = append([]string(nil), values...)
	}
	httpReq.Header.Set("Content-Type", contentTypeJSON)
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set(requestIDHeader, uuid.NewString())
	if g.userAgent != "" {
		httpReq.Header.Set("User-Agent", g.userAgent)
	}

	// The store is read at dispatch time so a renewal that completed after
	// the request was built is never missed.
	token, err := g.tokens.Token()
	switch {
	case err == nil:
		token.SetAuthHeader(httpReq)
	case apperrors.Is(err, apperrors.ErrNotAuthenticated):
	default:
		log.Err(err).Msg("Failed to read access token, sending request without it")
	}
	req.sentToken = strings.TrimPrefix(httpReq.Header.Get("Authorization"), "Bearer ")
	return httpReq, nil
}
