package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileBackend persists the document as a single JSON file
type FileBackend struct {
	path string
}

// NewFileBackend creates a FileBackend, creating the parent directory if needed
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &FileBackend{path: path}, nil
}

// Name returns the file path
func (f *FileBackend) Name() string {
	return f.path
}

// Read returns the raw file content, or ErrNotExist if the file is absent
func (f *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	return data, err
}

// Write replaces the file atomically using a temporary file and rename
func (f *FileBackend) Write(data []byte) error {
	tmpFile := f.path + ".tmp"

	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open temp file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpFile, f.path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Quarantine moves an unparsable file aside so the next save does not
// silently destroy it
func (f *FileBackend) Quarantine() (string, error) {
	target := fmt.Sprintf("%s.corrupt.%s", f.path, time.Now().Format("20060102_150405"))
	if err := os.Rename(f.path, target); err != nil {
		return "", err
	}
	return target, nil
}

// Status reports whether the document directory is reachable
func (f *FileBackend) Status() (string, bool) {
	if _, err := os.Stat(filepath.Dir(f.path)); err != nil {
		return "🔴 | Sin acceso al disco", false
	}
	return "🟢 | En linea (archivo)", true
}
