package storage

import "errors"

var (
	ErrInvalidConfig      = errors.New("invalid storage configuration")
	ErrInvalidPath        = errors.New("invalid path")
	ErrWriteFailed        = errors.New("failed to write object")
	ErrOperationTimeout   = errors.New("storage operation timed out")
	ErrOperationCanceled  = errors.New("storage operation canceled")
	ErrAccessDenied       = errors.New("access denied")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrServiceUnavailable = errors.New("storage service unavailable")
)
