package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/session"
	sessionrepofakes "github.com/jrsteele09/go-budget-client/session/repofakes"
	"github.com/stretchr/testify/require"
)

func TestTokenSource(t *testing.T) {
	store := sessionrepofakes.NewFakeSessionStore()
	ts := session.TokenSource(store)

	_, err := ts.Token()
	require.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	require.NoError(t, store.SetTokens("first", "refresh"))
	tok, err := ts.Token()
	require.NoError(t, err)
	require.Equal(t, "first", tok.AccessToken)

	require.NoError(t, store.SetAccessToken("second"))
	tok, err = ts.Token()
	require.NoError(t, err)
	require.Equal(t, "second", tok.AccessToken, "token source must not cache")

	req, err := http.NewRequest(http.MethodGet, "http://localhost/api/events/", nil)
	require.NoError(t, err)
	tok.SetAuthHeader(req)
	require.Equal(t, "Bearer second", req.Header.Get("Authorization"))
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims(t *testing.T) {
	exp := time.Now().Add(5 * time.Minute).Truncate(time.Second)

	t.Run("numeric user id", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"token_type": "access",
			"user_id":    42,
			"exp":        exp.Unix(),
		})
		claims, err := session.ParseClaims(token)
		require.NoError(t, err)
		require.Equal(t, "42", claims.UserID)
		require.Equal(t, "access", claims.TokenType)
		require.True(t, claims.ExpiresAt.Equal(exp))
		require.False(t, claims.Expired(time.Now()))
		require.True(t, claims.Expired(exp.Add(time.Second)))
	})

	t.Run("string user id and username", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"user_id": "u-7", "username": "amina"})
		claims, err := session.ParseClaims(token)
		require.NoError(t, err)
		require.Equal(t, "u-7", claims.UserID)
		require.Equal(t, "amina", claims.Username)
		require.True(t, claims.ExpiresAt.IsZero())
		require.False(t, claims.Expired(time.Now()))
	})

	t.Run("opaque token", func(t *testing.T) {
		_, err := session.ParseClaims("not-a-jwt")
		require.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
