package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each record as a JSON file under a single directory.
// It is the default backend: zero external services, good enough for a
// single process, and records survive restarts within one data dir.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

// Get reads the record file. A missing file means the record does not
// exist and is not an error.
func (f *FileStore) Get(_ context.Context, name string) ([]byte, bool, error) {
	body, err := os.ReadFile(f.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read record %s: %w", name, err)
	}
	return body, true, nil
}

// Set writes the record body, replacing any previous content.
func (f *FileStore) Set(_ context.Context, name string, body []byte) error {
	if err := os.WriteFile(f.path(name), body, 0o644); err != nil {
		return fmt.Errorf("write record %s: %w", name, err)
	}
	return nil
}

// Delete removes the record file; deleting a missing record is a no-op.
func (f *FileStore) Delete(_ context.Context, name string) error {
	if err := os.Remove(f.path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	return nil
}
