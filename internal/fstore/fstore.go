// Package fstore persists single JSON-encoded values and loose binary blobs
// to one flat data directory, keyed by caller-provided filename.
package fstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Store reads and writes files inside a single data directory. Filenames are
// trusted as given; there is no sub-path handling.
type Store struct {
	dir    string
	mu     sync.Mutex
	logger *zap.Logger
}

// New returns a Store rooted at dir.
func New(dir string, logger *zap.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the absolute path for a stored filename.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Exists reports whether a file with the given name is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Save JSON-encodes v and writes it to name via a temp file then rename.
func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return s.writeFile(name, b)
}

// Load reads name and decodes it into a T. A missing file and a decode
// failure both report not-present; only the decode failure is logged.
func Load[T any](s *Store, name string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v T
	b, err := os.ReadFile(s.Path(name))
	if errors.Is(err, os.ErrNotExist) {
		return v, false
	}
	if err != nil {
		s.logger.Error("read file", zap.String("file", name), zap.Error(err))
		return v, false
	}
	if err := json.Unmarshal(b, &v); err != nil {
		s.logger.Error("decode file, treating as absent", zap.String("file", name), zap.Error(err))
		var zero T
		return zero, false
	}
	return v, true
}

// SaveBinary writes raw bytes under name and returns the stored filename.
func (s *Store) SaveBinary(name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeFile(name, data); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes the named file. Missing files are a no-op.
func (s *Store) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error("delete file", zap.String("file", name), zap.Error(err))
	}
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func (s *Store) writeFile(name string, b []byte) error {
	f, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, s.Path(name))
}
