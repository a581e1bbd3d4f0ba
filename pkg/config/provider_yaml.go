package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		HTTP struct {
			ListenAddr string `yaml:"listen-addr,omitempty"`
			Port       int    `yaml:"port,omitempty"`
		} `yaml:"http,omitempty"`
		Storage struct {
			SQLite struct {
				Path string `yaml:"path,omitempty"`
			} `yaml:"sqlite,omitempty"`
			Postgres struct {
				ConnectionString string `yaml:"connection-string,omitempty"`
			} `yaml:"postgres,omitempty"`
		} `yaml:"storage,omitempty"`
		Workers struct {
			PoolSize       int `yaml:"pool-size,omitempty"`
			TimeoutSeconds int `yaml:"timeout-seconds,omitempty"`
		} `yaml:"workers,omitempty"`
		Debug   bool   `yaml:"debug,omitempty"`
		LogFile string `yaml:"log-file,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		HTTP: HTTPData{
			ListenAddr: yamlConfig.HTTP.ListenAddr,
			Port:       yamlConfig.HTTP.Port,
		},
		Workers: WorkersData{
			PoolSize:       yamlConfig.Workers.PoolSize,
			TimeoutSeconds: yamlConfig.Workers.TimeoutSeconds,
		},
		Debug:   yamlConfig.Debug,
		LogFile: yamlConfig.LogFile,
	}

	if yamlConfig.Storage.SQLite.Path != "" {
		config.Storage.SQLite = &SQLiteData{Path: yamlConfig.Storage.SQLite.Path}
	}
	if yamlConfig.Storage.Postgres.ConnectionString != "" {
		config.Storage.Postgres = &PostgresData{ConnectionString: yamlConfig.Storage.Postgres.ConnectionString}
	}

	config.ApplyDefaults()
	return config, nil
}
