// Package watermark persists the date of the last relayed chat message.
package watermark

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"l4d-chat-relay/internal/domain"
)

// DefaultPath is the watermark file used when none is configured.
const DefaultPath = "data.json"

var (
	ErrNotInitialized = errors.New("watermark file not initialized")
	ErrInvalidDate    = errors.New("invalid watermark date")
)

type record struct {
	LastDate string `json:"last_date"`
}

// FileStore keeps the watermark as {"last_date": "..."} in a JSON file.
// The file must exist before the relay starts.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Last returns the stored date string.
func (s *FileStore) Last() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s does not exist", ErrNotInitialized, s.path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read watermark: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("failed to decode watermark %s: %w", s.path, err)
	}
	if rec.LastDate == "" {
		return "", fmt.Errorf("%w: %s has no last_date", ErrNotInitialized, s.path)
	}

	return rec.LastDate, nil
}

// Get returns the stored watermark as a time.
func (s *FileStore) Get() (time.Time, error) {
	last, err := s.Last()
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(domain.DateLayout, last)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q in %s", ErrInvalidDate, last, s.path)
	}
	return t, nil
}

// Update overwrites the watermark with date.
// The file is replaced via rename so a crash never leaves it half written.
func (s *FileStore) Update(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("%w %q: expected %s", ErrInvalidDate, date, domain.DateLayout)
	}

	data, err := json.Marshal(record{LastDate: date})
	if err != nil {
		return fmt.Errorf("failed to encode watermark: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write watermark: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write watermark: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace watermark: %w", err)
	}

	return nil
}
