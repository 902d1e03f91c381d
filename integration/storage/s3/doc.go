// Package s3 publishes objects to Amazon S3 and S3-compatible services.
//
// It implements storage.Storage on top of the AWS SDK v2. The newsletter run
// uses it to push the rendered page to a bucket that serves static files.
//
//	cfg := s3.S3Config{
//		Bucket: "newsletter-site",
//		Region: "eu-central-1",
//	}
//
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	url, err := store.Put(ctx, "index.html", strings.NewReader(page), "text/html; charset=utf-8")
//
// # S3-Compatible Services
//
//	cfg := s3.S3Config{
//		Bucket:         "newsletter",
//		Region:         "us-east-1",
//		AccessKeyID:    "minioadmin",
//		SecretKey:      "minioadmin",
//		Endpoint:       "http://localhost:9000",
//		ForcePathStyle: true,
//	}
//
// AccessKeyID and SecretKey are optional; without them the default AWS
// credential chain (environment, shared config, IAM role) is used.
//
// # Errors
//
// SDK errors are mapped onto the storage package sentinels: ErrAccessDenied,
// ErrBucketNotFound, ErrServiceUnavailable, ErrOperationTimeout,
// ErrOperationCanceled, and ErrWriteFailed for everything else.
package s3
