package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type tokenCache struct {
	path string
}

func defaultTokenCache() (*tokenCache, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &tokenCache{path: filepath.Join(dir, "schoolfeedback", "token")}, nil
}

// Load returns "" without error when nothing is cached.
func (t *tokenCache) Load() (string, error) {
	raw, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (t *tokenCache) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(t.path, []byte(token), 0o600)
}
