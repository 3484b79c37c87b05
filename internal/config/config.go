package config

import "time"

type Config interface {
	EnvConfig
	ClientConfig
	StorageConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

// ClientConfig describes how the client reaches the budget backend.
type ClientConfig interface {
	GetAPIBaseURL() string
	GetLoginPath() string
	GetRefreshPath() string
	GetHTTPTimeout() time.Duration
	GetUserAgent() string
}

// StorageConfig describes where the session tokens are persisted.
type StorageConfig interface {
	GetSessionStore() string
	GetDataFolder() string
	GetKeyringService() string
}

type mainConfig struct {
	EnvVars
	Client
	Storage
}

func New() Config {
	return mainConfig{}
}
