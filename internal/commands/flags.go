package commands

import (
	"os"
	"path/filepath"

	"github.com/jrsteele09/go-budget-client/auth"
	"github.com/jrsteele09/go-budget-client/budget"
	"github.com/jrsteele09/go-budget-client/internal/config"
	"github.com/jrsteele09/go-budget-client/session"
)

type Flags struct {
	LogLevel   string
	ConfigPath string
	APIURL     string

	// Populated by Init in the root Before hook and available to all commands.
	Config config.Config
	Store  session.Store
	Client *budget.Client
	Auth   *auth.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "budgetctl", "config.yaml")
}
