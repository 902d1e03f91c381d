package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/roundup/core/storage"
)

// classifyS3Error converts S3 errors to storage package errors.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation", storage.ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s operation", storage.ErrOperationCanceled, operation)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return storage.ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "AccessDenied":
			return fmt.Errorf("%w: %s operation", storage.ErrAccessDenied, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s operation", storage.ErrServiceUnavailable, operation)
		case "NoSuchBucket":
			return storage.ErrBucketNotFound
		default:
			return fmt.Errorf("%w: %s operation failed (code: %s): %v", storage.ErrWriteFailed, operation, code, err)
		}
	}

	return fmt.Errorf("%w: %s operation failed: %v", storage.ErrWriteFailed, operation, err)
}
