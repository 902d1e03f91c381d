package storage

import (
	"context"
	"io"
)

// Storage stores a single object under a relative path.
type Storage interface {
	// Put writes the contents of r to path, replacing any existing object,
	// and returns where the object can be found (a filesystem path or URL).
	Put(ctx context.Context, path string, r io.Reader, contentType string) (string, error)
}
