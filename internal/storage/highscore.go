// Package storage persists the player's best score.
// The format is deliberately primitive: one file holding the decimal
// string of a single integer, nothing else. Anything unreadable loads
// as zero so a damaged file can never break the game.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Store reads and writes the high-score file.
type Store struct {
	path string
}

// Open prepares a store at the given path. It expands a leading ~ and
// creates parent directories, but never touches the file itself, so
// opening a store for a score that was never saved is not an error.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: empty high-score path")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	// Create parent directories
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return &Store{path: path}, nil
}

// Load returns the persisted high score.
// A missing file, an unreadable file, garbage content, or a negative
// value all load as 0; persistence problems are never surfaced here.
func (s *Store) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}

	// Surrounding whitespace is tolerated; anything else is garbage.
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// Save overwrites the persisted high score with the decimal string of
// the given value. Callers treat failures as non-fatal.
func (s *Store) Save(value int) error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}

// Path returns the file path backing this store.
func (s *Store) Path() string {
	return s.path
}
