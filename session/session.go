// Package session holds the bearer tokens of the signed-in user.
//
// A Store is the single source of truth for the access and refresh tokens.
// It is passed explicitly to the request gateway and the account service so
// that tests can substitute an isolated fake.
package session

import "github.com/jrsteele09/go-budget-client/internal/utils"

// Durable storage keys.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Tokens is the persisted session. Empty fields are absent tokens.
type Tokens struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Store persists the session tokens. Tokens are opaque strings; a Store
// never validates their content and never touches the network.
type Store interface {
	// GetAccessToken returns the access token, or nil when absent.
	GetAccessToken() (*string, error)

	// GetRefreshToken returns the refresh token, or nil when absent.
	GetRefreshToken() (*string, error)

	// SetTokens persists both tokens atomically (login and registration).
	SetTokens(access, refresh string) error

	// SetAccessToken replaces only the access token (after a renewal).
	SetAccessToken(access string) error

	// Clear removes both tokens (logout or renewal failure).
	Clear() error
}

// IsAuthenticated reports whether both tokens are present in the store.
func IsAuthenticated(store Store) bool {
	access, err := store.GetAccessToken()
	if err != nil || utils.Value(access) == "" {
		return false
	}
	refresh, err := store.GetRefreshToken()
	return err == nil && utils.Value(refresh) != ""
}
