package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store persists media blobs on the local filesystem and hands back the
// public URL a record should carry. Deployments fronting a CDN or object
// store swap in their own implementation of the same Save surface.
type Store struct {
	root    string
	baseURL string
}

// New builds a Store rooted at dir; baseURL prefixes returned URLs.
func New(dir, baseURL string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("storage root dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Store{root: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes data under key and returns its public URL. Keys may carry
// slash-separated prefixes ("products/imgs/..."); traversal segments are
// rejected.
func (s *Store) Save(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cleaned := path.Clean(strings.TrimLeft(key, "/"))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	dest := filepath.Join(s.root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create key dir: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}

	return s.baseURL + "/" + cleaned, nil
}
