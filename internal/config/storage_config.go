package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	sessionStoreVar   = "BUDGET_SESSION_STORE"
	dataFolderVar     = "BUDGET_DATA_DIR"
	keyringServiceVar = "BUDGET_KEYRING_SERVICE"
)

type Storage struct{}

var _ StorageConfig = Storage{}

// GetSessionStore returns the token storage backend: "file", "keyring" or "memory".
func (Storage) GetSessionStore() string {
	return strings.ToLower(GetEnv(sessionStoreVar, "file"))
}

func (Storage) GetDataFolder() string {
	return GetEnv(dataFolderVar, DefaultDataFolder())
}

func (Storage) GetKeyringService() string {
	return GetEnv(keyringServiceVar, "budgetctl")
}

// DefaultDataFolder is the per-user config directory, or ./data when it cannot be resolved.
func DefaultDataFolder() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "./data"
	}
	return filepath.Join(dir, "budgetctl")
}
