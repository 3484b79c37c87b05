package auth

import (
	"fmt"
	"net/mail"
	"strings"
)

// MinPasswordLength matches the server's rule for new passwords.
const MinPasswordLength = 6

// ValidateCredentials rejects a login the server would refuse without
// checking the password.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrUsernameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateRegistration checks the fields of a new account.
func ValidateRegistration(username, email, password string) error {
	if err := ValidateCredentials(username, password); err != nil {
		return err
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
		}
	}
	return nil
}

// ValidateNewPassword checks a password change before it is sent.
func ValidateNewPassword(oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrPasswordRequired
	}
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	if oldPassword == newPassword {
		return ErrPasswordUnchanged
	}
	return nil
}
