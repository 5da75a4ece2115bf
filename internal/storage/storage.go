package storage

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store reads and rewrites the tracking file at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// New returns a Store for path. A nil logger discards debug output.
func New(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the tracking file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole log. A missing file yields an empty log.
func (s *Store) Load() (*Log, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		s.logger.Debug("tracking file does not exist yet", "path", s.path)
		return NewLog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error opening %s: %w", s.path, err)
	}
	defer f.Close()

	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	s.logger.Debug("loaded tracking file", "path", s.path, "entries", l.Len())
	return l, nil
}

// Save atomically replaces the file with the serialized log.
func (s *Store) Save(l *Log) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	var buf bytes.Buffer
	if err := l.Encode(&buf); err != nil {
		return fmt.Errorf("storage error encoding log: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	s.logger.Debug("saved tracking file", "path", s.path, "entries", l.Len())
	return nil
}

// Update loads the log, applies fn and saves the result. Nothing is written
// when fn or loading fails.
func (s *Store) Update(fn func(*Log) error) error {
	l, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(l); err != nil {
		return err
	}
	return s.Save(l)
}
