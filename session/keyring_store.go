package session

import (
	"errors"
	"fmt"

	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/rs/zerolog/log"
	"github.com/zalando/go-keyring"
)

var _ Store = (*KeyringStore)(nil)

// KeyringStore keeps the tokens in the operating system keyring under a
// single service name.
type KeyringStore struct {
	service string
}

func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

func (k *KeyringStore) GetAccessToken() (*string, error) {
	return k.get(AccessTokenKey)
}

func (k *KeyringStore) GetRefreshToken() (*string, error) {
	return k.get(RefreshTokenKey)
}

// SetTokens writes both entries. If the second write fails the first is
// removed again so a half-written session is never observed as valid.
func (k *KeyringStore) SetTokens(access, refresh string) error {
	if err := k.set(AccessTokenKey, access); err != nil {
		return err
	}
	if err := k.set(RefreshTokenKey, refresh); err != nil {
		if cerr := k.Clear(); cerr != nil {
			log.Err(cerr).Msg("Failed to roll back partially written keyring session")
		}
		return err
	}
	return nil
}

func (k *KeyringStore) SetAccessToken(access string) error {
	return k.set(AccessTokenKey, access)
}

func (k *KeyringStore) Clear() error {
	return apperrors.Join(k.delete(AccessTokenKey), k.delete(RefreshTokenKey))
}

func (k *KeyringStore) get(key string) (*string, error) {
	value, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: keyring get %s: %w", apperrors.ErrStorage, key, err)
	}
	if value == "" {
		return nil, nil
	}
	return &value, nil
}

func (k *KeyringStore) set(key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("%w: keyring set %s: %w", apperrors.ErrStorage, key, err)
	}
	return nil
}

func (k *KeyringStore) delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%w: keyring delete %s: %w", apperrors.ErrStorage, key, err)
	}
	return nil
}
