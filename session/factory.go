package session

import (
	"fmt"

	"github.com/jrsteele09/go-budget-client/internal/config"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
)

// Store kinds accepted by NewStore.
const (
	FileStoreKind    = "file"
	KeyringStoreKind = "keyring"
	MemoryStoreKind  = "memory"
)

// NewStore builds the Store selected by the storage configuration.
func NewStore(cfg config.StorageConfig) (Store, error) {
	switch kind := cfg.GetSessionStore(); kind {
	case FileStoreKind, "":
		return NewFileStore(cfg.GetDataFolder()), nil
	case KeyringStoreKind:
		return NewKeyringStore(cfg.GetKeyringService()), nil
	case MemoryStoreKind:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStore, kind)
	}
}
