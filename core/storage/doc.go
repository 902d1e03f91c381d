// Package storage provides a minimal object-writing abstraction with a local
// filesystem implementation. The S3 implementation lives in
// integration/storage/s3.
//
//	store := storage.NewLocal("./frontend")
//	path, err := store.Put(ctx, "index.html", strings.NewReader(page), "text/html; charset=utf-8")
//
// Put creates missing parent directories and overwrites existing files.
// Paths that escape the root (for example "../x") are rejected with
// ErrInvalidPath. Write failures wrap ErrWriteFailed.
package storage
