package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	apiURLVar      = "BUDGET_API_URL"
	loginPathVar   = "BUDGET_LOGIN_PATH"
	refreshPathVar = "BUDGET_REFRESH_PATH"
	httpTimeoutVar = "BUDGET_HTTP_TIMEOUT"
	userAgentVar   = "BUDGET_USER_AGENT"

	defaultHTTPTimeout = 30 * time.Second
)

type Client struct{}

var _ ClientConfig = Client{}

// GetAPIBaseURL returns the backend API root without a trailing slash, e.g. "http://localhost/api".
func (Client) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiURLVar, "http://localhost/api"), "/")
}

// GetLoginPath is where the user is sent once the session has been terminated.
func (Client) GetLoginPath() string {
	return GetEnv(loginPathVar, "/login")
}

func (Client) GetRefreshPath() string {
	return GetEnv(refreshPathVar, "/token/refresh/")
}

func (Client) GetHTTPTimeout() time.Duration {
	raw := GetEnv(httpTimeoutVar, "")
	if raw == "" {
		return defaultHTTPTimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn().Str("value", raw).Msg("Invalid HTTP timeout, using default")
		return defaultHTTPTimeout
	}
	return d
}

func (Client) GetUserAgent() string {
	return GetEnv(userAgentVar, "budgetctl")
}
