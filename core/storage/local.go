package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes objects under a root directory on the local filesystem.
type Local struct {
	root     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// LocalOption configures Local.
type LocalOption func(*Local)

// WithPermissions overrides the default 0755/0644 directory and file modes.
func WithPermissions(dir, file os.FileMode) LocalOption {
	return func(l *Local) {
		l.dirPerm = dir
		l.filePerm = file
	}
}

// NewLocal creates a Local storage rooted at root. The directory does not
// need to exist yet.
func NewLocal(root string, opts ...LocalOption) *Local {
	l := &Local{root: root, dirPerm: 0755, filePerm: 0644}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ Storage = (*Local)(nil)

// Put writes r to root/path, creating missing parent directories.
// The content type is ignored on the local filesystem.
func (l *Local) Put(ctx context.Context, path string, r io.Reader, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOperationCanceled, err)
	}

	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(path, "/")))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	full := filepath.Join(l.root, clean)
	if err := os.MkdirAll(filepath.Dir(full), l.dirPerm); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrWriteFailed, err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: read content: %v", ErrWriteFailed, err)
	}

	if err := os.WriteFile(full, data, l.filePerm); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	return full, nil
}
