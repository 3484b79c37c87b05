// Package auth signs the user in and out and describes the current session.
package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jrsteele09/go-budget-client/budget"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/internal/utils"
	"github.com/jrsteele09/go-budget-client/session"
	"github.com/rs/zerolog/log"
)

// User is the signed-in account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"` // access token expiry, zero when unknown
}

// Service ties account calls to the session store.
type Service struct {
	accounts budget.AccountAPI
	store    session.Store
	nowTime  func() time.Time
}

type ServiceOption func(*Service)

// WithNowTime sets the clock used to report token expiry (tests).
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

func NewService(accounts budget.AccountAPI, store session.Store, options ...ServiceOption) (*Service, error) {
	if accounts == nil {
		return nil, errors.New("[auth.NewService] accounts API is required")
	}
	if store == nil {
		return nil, errors.New("[auth.NewService] session store is required")
	}

	s := &Service{
		accounts: accounts,
		store:    store,
		nowTime:  time.Now,
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// Login authenticates and stores both tokens.
func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	resp, err := s.accounts.Login(ctx, budget.Credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.store.SetTokens(resp.Access, resp.Refresh); err != nil {
		return nil, apperrors.Wrapf(err, "[auth.Login] store tokens")
	}

	log.Info().Str("username", resp.Username).Msg("Signed in")
	return &User{
		ID:        strconv.FormatInt(resp.UserID, 10),
		Username:  utils.FirstNonEmpty(resp.Username, username),
		ExpiresAt: s.expiry(resp.Access),
	}, nil
}

// Register creates the account and signs it in.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {
	if err := ValidateRegistration(username, email, password); err != nil {
		return nil, err
	}

	resp, err := s.accounts.Register(ctx, budget.Registration{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.store.SetTokens(resp.Access, resp.Refresh); err != nil {
		return nil, apperrors.Wrapf(err, "[auth.Register] store tokens")
	}

	user := &User{
		ID:        strconv.FormatInt(resp.UserID, 10),
		Username:  utils.FirstNonEmpty(resp.Username, username),
		Email:     email,
		ExpiresAt: s.expiry(resp.Access),
	}
	if resp.User != nil && resp.User.Email != "" {
		user.Email = resp.User.Email
	}
	log.Info().Str("username", user.Username).Msg("Account created")
	return user, nil
}

// Logout blacklists the refresh token on the server when it can and always
// clears the local session. Only a failure to clear is returned.
func (s *Service) Logout(ctx context.Context) error {
	refresh, err := s.store.GetRefreshToken()
	if err != nil {
		log.Err(err).Msg("Failed to read refresh token")
	}
	if token := utils.Value(refresh); token != "" {
		if err := s.accounts.Logout(ctx, token); err != nil {
			log.Warn().Err(err).Msg("Server logout failed, clearing local session anyway")
		}
	}

	if err := s.store.Clear(); err != nil {
		return apperrors.Wrapf(err, "[auth.Logout] clear session")
	}
	log.Info().Msg("Signed out")
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := ValidateNewPassword(oldPassword, newPassword); err != nil {
		return err
	}
	return s.accounts.ChangePassword(ctx, oldPassword, newPassword)
}

// CurrentUser restores the user from the stored tokens. Both tokens must be
// present; the user is read from the access token claims.
func (s *Service) CurrentUser() (*User, error) {
	if !session.IsAuthenticated(s.store) {
		return nil, apperrors.ErrNotAuthenticated
	}
	access, err := s.store.GetAccessToken()
	if err != nil {
		return nil, apperrors.Wrapf(err, "[auth.CurrentUser] read access token")
	}

	claims, err := session.ParseClaims(utils.Value(access))
	if err != nil {
		return nil, err
	}
	if claims.Expired(s.nowTime()) {
		log.Debug().Time("expires_at", claims.ExpiresAt).Msg("Access token expired, it will be renewed on the next request")
	}
	return &User{
		ID:        claims.UserID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (s *Service) IsAuthenticated() bool {
	return session.IsAuthenticated(s.store)
}

func (s *Service) expiry(access string) time.Time {
	claims, err := session.ParseClaims(access)
	if err != nil {
		return time.Time{}
	}
	return claims.ExpiresAt
}
