// Package config manages the per-user key-value store at
// ~/.adosdlc/config.env. Values are read wholesale at open and persisted
// individually on demand, so a credential entered once survives across runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Well-known store keys
const (
	KeyToken   = "ADO_MCP_AUTH_TOKEN"
	KeyOrg     = "AZURE_DEVOPS_ORG"
	KeyProject = "AZURE_DEVOPS_PROJECT"
)

const (
	configDirName  = ".adosdlc"
	configFileName = "config.env"
)

// ErrDeclined is returned when the user answers a required prompt with
// an empty value.
var ErrDeclined = errors.New("no value provided")

// Prompter asks the user for a value. Secret values are read without echo.
type Prompter interface {
	Prompt(message string, secret bool) (string, error)
}

// Store is the loaded key-value config backed by a dotenv file
type Store struct {
	v        *viper.Viper
	path     string
	prompter Prompter
}

// Open loads the store from the default per-user location, creating the
// config directory if needed.
func Open(prompter Prompter) (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, configDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create config directory: %w", err)
	}
	return OpenAt(filepath.Join(dir, configFileName), prompter)
}

// OpenAt loads the store from an explicit file path
func OpenAt(path string, prompter Prompter) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path, prompter: prompter}, nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Get returns the stored value for key, or "" if unset
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// Set stores a value and persists it immediately
func (s *Store) Set(key, value string) error {
	s.v.Set(key, value)
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", s.path, err)
	}
	return nil
}

// GetOrPrompt returns the stored value for key, prompting the user and
// persisting the answer when missing. Because the answer is stored before
// returning, the same key is never prompted twice within one run.
func (s *Store) GetOrPrompt(key, promptText string, secret bool) (string, error) {
	if value := s.Get(key); value != "" {
		return value, nil
	}
	if s.prompter == nil {
		return "", fmt.Errorf("%s is not configured", key)
	}
	value, err := s.prompter.Prompt(promptText, secret)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	if value == "" {
		return "", fmt.Errorf("%s: %w", key, ErrDeclined)
	}
	if err := s.Set(key, value); err != nil {
		return "", err
	}
	return value, nil
}
