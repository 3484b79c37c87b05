package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
)

// Claims are the fields the client reads from an access token.
type Claims struct {
	UserID    string
	Username  string
	TokenType string
	ExpiresAt time.Time
}

// Expired reports whether the token expiry has passed at now. Tokens
// without an expiry never expire.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseClaims decodes the access token payload without verifying the
// signature. The backend remains the authority on validity; the claims are
// only used to describe the local session.
func ParseClaims(accessToken string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, mc); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}

	claims := &Claims{
		UserID:    claimString(mc["user_id"]),
		Username:  claimString(mc["username"]),
		TokenType: claimString(mc["token_type"]),
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

func claimString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
