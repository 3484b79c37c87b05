package errors_test

import (
	"fmt"
	"testing"

	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, apperrors.Wrapf(nil, "context %d", 1))
	})

	t.Run("wraps with context", func(t *testing.T) {
		err := apperrors.Wrapf(apperrors.ErrNoRefreshToken, "renew for %s", "GET /events/")
		require.EqualError(t, err, "renew for GET /events/: no refresh token")
		require.True(t, apperrors.Is(err, apperrors.ErrNoRefreshToken))
	})
}

type codeErr struct{ code int }

func (c *codeErr) Error() string { return fmt.Sprintf("code %d", c.code) }

func TestAs(t *testing.T) {
	err := apperrors.Wrapf(&codeErr{code: 401}, "dispatch")
	var target *codeErr
	require.True(t, apperrors.As(err, &target))
	require.Equal(t, 401, target.code)
}
