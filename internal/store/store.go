// Package store implements address book persistence to a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkovalov/rolodex/internal/book"
)

// FileStore persists a whole address book as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted book. A missing, truncated, or otherwise
// unreadable file degrades to an empty book rather than an error: the
// stored data is a cache of the user's session, and a fresh book is
// always a valid starting point.
func (s *FileStore) Load() *book.Book {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return book.New()
	}

	b := book.New()
	if err := json.Unmarshal(data, b); err != nil {
		return book.New()
	}
	return b
}

// Save writes the full book to the backing file, creating parent
// directories as needed.
func (s *FileStore) Save(b *book.Book) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: creating directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshaling: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", s.path, err)
	}
	return nil
}

// Remove deletes the backing file. Removing an absent file is not an error.
func (s *FileStore) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: removing %s: %w", s.path, err)
	}
	return nil
}
