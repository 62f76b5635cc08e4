// Package storage abstracts uploaded file persistence. Implementations are
// constructed at startup and injected into the handlers that need them.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Storage interface {
	// Save writes the content under the given name and returns the path
	// it can later be served from.
	Save(name string, r io.Reader) (string, error)
}

// LocalStorage stores files on the local filesystem under a root directory.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) Save(name string, r io.Reader) (string, error) {
	// Uploaded names are untrusted; keep only the base name.
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	path := filepath.Join(s.root, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		return "", fmt.Errorf("io.Copy -> %w", err)
	}

	return name, nil
}

func (s *LocalStorage) Root() string {
	return s.root
}
