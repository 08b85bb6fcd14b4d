// ABOUTME: File-backed session store in the XDG config directory
// ABOUTME: Holds one JSON document keyed by access_token with owner-only permissions

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the token to a JSON file
type FileStore struct {
	path string
}

type sessionFile struct {
	AccessToken string `json:"access_token"`
}

// NewFileStore creates a store backed by the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultConfigDir returns the default config directory following XDG base directory conventions
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "balungpisah")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "balungpisah")
}

// DefaultPath returns the session file location inside DefaultConfigDir
func DefaultPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "session.json")
}

// Path returns the file backing the store
func (f *FileStore) Path() string {
	return f.path
}

// Token reads the stored token. A missing or unreadable document means no session.
func (f *FileStore) Token() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}

	var s sessionFile
	if err := json.Unmarshal(data, &s); err != nil {
		// Corrupt file, treat as logged out
		return "", nil
	}
	return s.AccessToken, nil
}

// SetToken writes the token, creating the config directory if needed
func (f *FileStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(sessionFile{AccessToken: token}, "", "  ")
	if err != nil {
		return err
	}

	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(f.path, 0600); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to restrict session file: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
