package budget

import (
	"context"
	"fmt"

	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
)

// AccountAPI is the account half of the API, used by auth.Service.
type AccountAPI interface {
	Login(ctx context.Context, credentials Credentials) (*LoginResponse, error)
	Register(ctx context.Context, registration Registration) (*RegisterResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// RegisteredUser is the nested user some backend versions return on
// registration.
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type RegisterResponse struct {
	Access   string          `json:"access"`
	Refresh  string          `json:"refresh"`
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	User     *RegisteredUser `json:"user,omitempty"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, credentials Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, "/login/", credentials, &out); err != nil {
		return nil, err
	}
	if out.Access == "" || out.Refresh == "" {
		return nil, fmt.Errorf("%w: login response has no tokens", apperrors.ErrInvalidResponse)
	}
	return &out, nil
}

// Register creates an account and returns its first token pair.
func (c *Client) Register(ctx context.Context, registration Registration) (*RegisterResponse, error) {
	var out RegisterResponse
	if err := c.post(ctx, "/register/", registration, &out); err != nil {
		return nil, err
	}
	if out.Access == "" || out.Refresh == "" {
		return nil, fmt.Errorf("%w: register response has no tokens", apperrors.ErrInvalidResponse)
	}
	if out.User != nil {
		if out.UserID == 0 {
			out.UserID = out.User.ID
		}
		if out.Username == "" {
			out.Username = out.User.Username
		}
	}
	return &out, nil
}

// Logout blacklists refreshToken on the server.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.post(ctx, "/logout/", refreshRequest{Refresh: refreshToken}, nil)
}

// RefreshToken asks for a new access token through the regular request
// path. The gateway renews expired sessions on its own; this is for callers
// that want to renew eagerly.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	var out refreshResponse
	if err := c.post(ctx, "/token/refresh/", refreshRequest{Refresh: refreshToken}, &out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", fmt.Errorf("%w: refresh response has no access token", apperrors.ErrInvalidResponse)
	}
	return out.Access, nil
}

func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return c.post(ctx, "/change-password/", changePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}, nil)
}
