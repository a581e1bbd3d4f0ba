// Package config loads the channelflow service configuration.
package config

import "time"

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)
}

// ConfigData represents the complete service configuration
type ConfigData struct {
	HTTP    HTTPData    `json:"http"`
	Storage StorageData `json:"storage,omitempty"`
	Workers WorkersData `json:"workers,omitempty"`
	Debug   bool        `json:"debug,omitempty"`
	LogFile string      `json:"log_file,omitempty"`
}

// HTTPData holds the REST server configuration
type HTTPData struct {
	ListenAddr string `json:"listen_addr"`
	Port       int    `json:"port"`
}

// StorageData holds the configuration for the calculation store. Exactly one
// backend should be configured; SQLite is the default when both are empty.
type StorageData struct {
	SQLite   *SQLiteData   `json:"sqlite,omitempty"`
	Postgres *PostgresData `json:"postgres,omitempty"`
}

// SQLiteData holds configuration for the single-file SQLite store
type SQLiteData struct {
	Path string `json:"path"`
}

// PostgresData holds configuration for a shared Postgres store
type PostgresData struct {
	ConnectionString string `json:"connection_string"`
}

// WorkersData holds the calculation worker pool configuration
type WorkersData struct {
	PoolSize       int `json:"pool_size,omitempty"`
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// Defaults applied after loading when fields are unset.
const (
	DefaultPort        = 8090
	DefaultPoolSize    = 8
	DefaultTimeoutSecs = 10
	DefaultSQLitePath  = "channelflow.db"
)

// ApplyDefaults fills unset fields with their default values.
func (c *ConfigData) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultPort
	}
	if c.Workers.PoolSize <= 0 {
		c.Workers.PoolSize = DefaultPoolSize
	}
	if c.Workers.TimeoutSeconds <= 0 {
		c.Workers.TimeoutSeconds = DefaultTimeoutSecs
	}
	if c.Storage.SQLite == nil && c.Storage.Postgres == nil {
		c.Storage.SQLite = &SQLiteData{Path: DefaultSQLitePath}
	}
}

// CalcTimeout returns the per-request calculation timeout as a duration.
func (c *ConfigData) CalcTimeout() time.Duration {
	return time.Duration(c.Workers.TimeoutSeconds) * time.Second
}
