package gateway

import (
	"context"
	"net/http"
)

// SessionTerminated is invoked after the gateway has cleared the session.
// It is the application's redirect-to-login hook; loginPath is the
// configured login location.
type SessionTerminated func(ctx context.Context, loginPath string, reason error)

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient sets the client used for every dispatch.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		g.client = client
	}
}

// WithRenewer replaces the default HTTP renewal call.
func WithRenewer(renewer Renewer) Option {
	return func(g *Gateway) {
		g.renewer = renewer
	}
}

// WithOnSessionTerminated registers the redirect-to-login hook.
func WithOnSessionTerminated(fn SessionTerminated) Option {
	return func(g *Gateway) {
		g.onTerminated = fn
	}
}

// WithLoginPath sets the location passed to the SessionTerminated hook.
func WithLoginPath(path string) Option {
	return func(g *Gateway) {
		g.loginPath = path
	}
}

// WithRefreshPath sets the renewal endpoint used by the default renewer.
func WithRefreshPath(path string) Option {
	return func(g *Gateway) {
		g.refreshPath = path
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(userAgent string) Option {
	return func(g *Gateway) {
		g.userAgent = userAgent
	}
}
