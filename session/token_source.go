package session

import (
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"golang.org/x/oauth2"
)

type storeTokenSource struct {
	store Store
}

// TokenSource exposes the stored access token as an oauth2.TokenSource.
// Every call reads the store, so a token replaced by a renewal is picked up
// by the next request. It returns ErrNotAuthenticated when no token is held.
func TokenSource(store Store) oauth2.TokenSource {
	return storeTokenSource{store: store}
}

func (s storeTokenSource) Token() (*oauth2.Token, error) {
	access, err := s.store.GetAccessToken()
	if err != nil {
		return nil, err
	}
	if access == nil || *access == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	return BearerToken(*access), nil
}

// BearerToken wraps an access token string.
func BearerToken(access string) *oauth2.Token {
	return &oauth2.Token{
		AccessToken: access,
		TokenType:   "Bearer",
	}
}
