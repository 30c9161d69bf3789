package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Local stores documents in a directory on disk.
// It is safe for concurrent use.
type Local struct {
	root string
}

// NewLocal creates a directory-backed archive, creating the root when absent.
func NewLocal(root string) (*Local, error) {
	if root == "" {
		return nil, ErrInvalidConfig
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return &Local{root: abs}, nil
}

// Store writes the document under the archive root and returns its absolute
// path. Subdirectories in the name are created as needed.
func (l *Local) Store(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	dst := filepath.Join(l.root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errors.Join(ErrStoreFailed, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", errors.Join(ErrStoreFailed, err)
	}
	return dst, nil
}

// Root returns the absolute archive directory.
func (l *Local) Root() string {
	return l.root
}
