package auth

import "errors"

var (
	ErrUsernameRequired  = errors.New("username is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrPasswordUnchanged = errors.New("new password must differ from the old password")
)
