package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/roundup/core/storage"
)

var _ storage.Storage = (*S3Storage)(nil)

// S3Client defines the S3 operations used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// S3Storage publishes objects to Amazon S3 and S3-compatible services.
type S3Storage struct {
	client         S3Client
	bucket         string
	region         string
	endpoint       string
	baseURL        string
	forcePathStyle bool
	uploadTimeout  time.Duration
}

// S3Config contains configuration for S3 storage.
type S3Config struct {
	Bucket         string `env:"PUBLISH_S3_BUCKET"`
	Region         string `env:"PUBLISH_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"PUBLISH_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"PUBLISH_S3_SECRET_KEY"`
	Endpoint       string `env:"PUBLISH_S3_ENDPOINT"` // For S3-compatible services like MinIO, Wasabi
	BaseURL        string `env:"PUBLISH_S3_BASE_URL"` // Custom CDN or public URL base
	ForcePathStyle bool   `env:"PUBLISH_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Enabled reports whether a bucket is configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// S3Option defines a function that configures S3Storage.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3aws.Options)
	uploadTimeout   time.Duration
}

// WithS3Client sets a pre-configured S3 client. Mostly used with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3aws.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithS3UploadTimeout bounds a single upload. Without it the caller's
// context deadline applies.
func WithS3UploadTimeout(timeout time.Duration) S3Option {
	return func(o *s3Options) {
		o.uploadTimeout = timeout
	}
}

// New creates a new S3 storage instance.
// Static credentials are used when both keys are set; otherwise the default
// AWS credential chain applies.
func New(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, storage.ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	var client S3Client
	if options.s3Client != nil {
		client = options.s3Client
	} else {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}

		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}

		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}

		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(o *s3aws.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle

			for _, opt := range options.s3ClientOptions {
				opt(o)
			}
		})
	}

	return &S3Storage{
		client:         client,
		bucket:         cfg.Bucket,
		region:         cfg.Region,
		endpoint:       cfg.Endpoint,
		baseURL:        cfg.BaseURL,
		forcePathStyle: cfg.ForcePathStyle,
		uploadTimeout:  options.uploadTimeout,
	}, nil
}

// Put uploads r to the given key and returns the object's public URL.
func (s *S3Storage) Put(ctx context.Context, path string, r io.Reader, contentType string) (string, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	path = strings.TrimPrefix(path, "/")
	if path == "" || strings.Contains(path, "..") {
		return "", fmt.Errorf("%w: %s", storage.ErrInvalidPath, path)
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", classifyS3Error(err, "upload object")
	}

	return s.URL(path), nil
}

// URL returns the public URL for a key.
// A custom BaseURL wins. Otherwise the URL follows the endpoint and
// path-style settings, falling back to the standard AWS hostnames.
func (s *S3Storage) URL(path string) string {
	path = strings.TrimPrefix(path, "/")

	if s.baseURL != "" {
		return strings.TrimSuffix(s.baseURL, "/") + "/" + path
	}

	if s.endpoint != "" {
		endpoint := strings.TrimSuffix(s.endpoint, "/")
		protocol := "https://"
		if after, ok := strings.CutPrefix(endpoint, "http://"); ok {
			protocol = "http://"
			endpoint = after
		} else if after, ok := strings.CutPrefix(endpoint, "https://"); ok {
			endpoint = after
		}

		if s.forcePathStyle {
			return fmt.Sprintf("%s%s/%s/%s", protocol, endpoint, s.bucket, path)
		}
		return fmt.Sprintf("%s%s.%s/%s", protocol, s.bucket, endpoint, path)
	}

	if s.forcePathStyle {
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s/%s", s.region, s.bucket, path)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, path)
}
