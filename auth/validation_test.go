package auth_test

import (
	"testing"

	"github.com/jrsteele09/go-budget-client/auth"
	"github.com/stretchr/testify/require"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		err      error
	}{
		{name: "valid", username: "amina", email: "amina@example.com", password: "secret"},
		{name: "email optional", username: "amina", password: "secret"},
		{name: "no username", email: "amina@example.com", password: "secret", err: auth.ErrUsernameRequired},
		{name: "no password", username: "amina", email: "amina@example.com", err: auth.ErrPasswordRequired},
		{name: "bad email", username: "amina", email: "amina@", password: "secret", err: auth.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.ValidateRegistration(tt.username, tt.email, tt.password)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateNewPassword(t *testing.T) {
	require.NoError(t, auth.ValidateNewPassword("old-secret", "new-secret"))
	require.ErrorIs(t, auth.ValidateNewPassword("", "new-secret"), auth.ErrPasswordRequired)
	require.ErrorIs(t, auth.ValidateNewPassword("old-secret", "12345"), auth.ErrPasswordTooShort)
	require.ErrorIs(t, auth.ValidateNewPassword("old-secret", "old-secret"), auth.ErrPasswordUnchanged)
}
