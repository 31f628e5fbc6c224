// Package state persists the session snapshot between CLI invocations.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ratlog/internal/session"
)

const fileName = "current_state.toml"

type Store struct {
	path string
}

// DefaultDir returns ~/.config/ratlog.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ratlog"), nil
}

// New returns a Store keeping its file under dir. The directory is created
// on first save.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

func (s *Store) Path() string {
	return s.path
}

// Save writes the snapshot through a temporary file so a crash never leaves
// a half written state behind.
func (s *Store) Save(snap session.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("Failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("Failed to create state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("Failed to encode state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("Failed to write state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("Failed to replace state file: %w", err)
	}
	return nil
}

// Load reads the snapshot. A missing file yields an empty snapshot.
func (s *Store) Load() (session.Snapshot, error) {
	var snap session.Snapshot
	if _, err := toml.DecodeFile(s.path, &snap); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return session.Snapshot{}, nil
		}
		return session.Snapshot{}, fmt.Errorf("Failed to read state file %s: %w", s.path, err)
	}
	return snap, nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("Failed to remove state file: %w", err)
	}
	return nil
}

func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
