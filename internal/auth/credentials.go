// Package auth resolves the GitHub token attached to every API call.
// Resolution order: a .env file in the working directory, the GITHUB_TOKEN
// environment variable, then the credential store written by
// `ghrecap auth login`. A missing token is a fatal configuration error
// raised before any network call is attempted.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvToken is the environment variable holding the GitHub token.
const EnvToken = "GITHUB_TOKEN"

// ErrNoToken is returned when no token can be found anywhere. Its text is
// the user-facing fatal message.
var ErrNoToken = errors.New("GitHub token not found. Set GITHUB_TOKEN in your .env file.")

// Credentials holds a stored GitHub token.
type Credentials struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
}

// FileStore persists credentials as JSON at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStorePath returns the per-user credential file location.
func DefaultStorePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "ghrecap", "credentials.json")
}

// Save writes the credentials with owner-only permissions.
func (s *FileStore) Save(cred Credentials) error {
	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Load reads previously stored credentials.
func (s *FileStore) Load() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}, ErrNoToken
	}
	var cred Credentials
	if err := json.Unmarshal(data, &cred); err != nil {
		return Credentials{}, ErrNoToken
	}
	return cred, nil
}

// ResolveToken returns the GitHub token, or ErrNoToken if neither the
// environment nor the store has one.
func (s *FileStore) ResolveToken() (string, error) {
	godotenv.Load() // a missing .env file is fine

	if token := os.Getenv(EnvToken); token != "" {
		return token, nil
	}

	cred, err := s.Load()
	if err == nil && cred.Token != "" {
		return cred.Token, nil
	}
	return "", ErrNoToken
}
