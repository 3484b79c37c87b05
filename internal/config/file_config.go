package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileValues is the on-disk form of the configuration. Every field maps to
// the environment variable that overrides it.
type FileValues struct {
	AppName        string `yaml:"app_name"`
	Env            string `yaml:"env"`
	LogLevel       string `yaml:"log_level"`
	APIURL         string `yaml:"api_url"`
	LoginPath      string `yaml:"login_path"`
	RefreshPath    string `yaml:"refresh_path"`
	HTTPTimeout    string `yaml:"http_timeout"`
	UserAgent      string `yaml:"user_agent"`
	SessionStore   string `yaml:"session_store"`
	DataDir        string `yaml:"data_dir"`
	KeyringService string `yaml:"keyring_service"`
}

func (f FileValues) byEnvVar() map[string]string {
	return map[string]string{
		appNameVar:        f.AppName,
		envVar:            f.Env,
		logLevelVar:       f.LogLevel,
		apiURLVar:         f.APIURL,
		loginPathVar:      f.LoginPath,
		refreshPathVar:    f.RefreshPath,
		httpTimeoutVar:    f.HTTPTimeout,
		userAgentVar:      f.UserAgent,
		sessionStoreVar:   f.SessionStore,
		dataFolderVar:     f.DataDir,
		keyringServiceVar: f.KeyringService,
	}
}

var (
	fileValues     map[string]string
	fileValuesLock sync.RWMutex
)

// Load reads the YAML config file at path and returns the resulting Config.
// A missing file is not an error; environment variables and defaults apply.
func Load(path string) (Config, error) {
	if path == "" {
		setFileValues(nil)
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			setFileValues(nil)
			return New(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var values FileValues
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	setFileValues(values.byEnvVar())
	return New(), nil
}

func setFileValues(values map[string]string) {
	fileValuesLock.Lock()
	defer fileValuesLock.Unlock()
	fileValues = values
}

func fileValue(envVar string) string {
	fileValuesLock.RLock()
	defer fileValuesLock.RUnlock()
	return fileValues[envVar]
}
