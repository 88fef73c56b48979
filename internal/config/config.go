package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config is the CLI configuration. The auth key can come from the
// environment or from the yaml key file written by "glotta auth set-key";
// the environment wins.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	AuthKey   string `envconfig:"GLOTTA_AUTH_KEY" default:""`
	ServerURL string `envconfig:"GLOTTA_SERVER_URL" default:""`
}

// Load reads the environment and fills gaps from the key file.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.AuthKey == "" || cfg.ServerURL == "" {
		path, err := DefaultKeyFilePath()
		if err == nil {
			keyFile, loadErr := LoadKeyFile(path)
			if loadErr != nil {
				return nil, loadErr
			}
			if cfg.AuthKey == "" {
				cfg.AuthKey = keyFile.Auth.AuthKey
			}
			if cfg.ServerURL == "" {
				cfg.ServerURL = keyFile.Server.BaseURL
			}
		}
	}

	return &cfg, nil
}

// Validate checks the fields every API command needs.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AuthKey) == "" {
		return fmt.Errorf("auth key is missing: set GLOTTA_AUTH_KEY or run \"glotta auth set-key\"")
	}
	return nil
}
