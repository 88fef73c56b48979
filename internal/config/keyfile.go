package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyFile is the on-disk CLI configuration, kept small on purpose: the
// server URL and the stored auth key.
type KeyFile struct {
	Server ServerSection `yaml:"server"`
	Auth   AuthSection   `yaml:"auth"`
}

type ServerSection struct {
	BaseURL string `yaml:"base_url"`
}

type AuthSection struct {
	AuthKey string `yaml:"auth_key"`
}

// DefaultKeyFilePath returns the key file location under the user config
// directory.
func DefaultKeyFilePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "glotta", "config.yaml"), nil
}

// LoadKeyFile reads the key file. A missing file is not an error and
// yields the zero value.
func LoadKeyFile(path string) (KeyFile, error) {
	var keyFile KeyFile
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return keyFile, nil
		}
		return keyFile, fmt.Errorf("read key file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &keyFile); err != nil {
		return KeyFile{}, fmt.Errorf("parse key file: %w", err)
	}
	return keyFile, nil
}

// SaveAuthKey persists the auth key into the key file, preserving the
// other fields. The key is a credential: the file is written 0600.
func SaveAuthKey(path, authKey string) error {
	key := strings.TrimSpace(authKey)
	if key == "" {
		return fmt.Errorf("auth key is empty")
	}

	keyFile, err := LoadKeyFile(path)
	if err != nil {
		return err
	}
	keyFile.Auth.AuthKey = key

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create key file dir: %w", err)
	}
	raw, err := yaml.Marshal(keyFile)
	if err != nil {
		return fmt.Errorf("serialize key file: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}
	return nil
}
