package textgen

import "errors"

var (
	// ErrInvalidAPIKey indicates an invalid or missing API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrInvalidModel indicates that no model was configured.
	ErrInvalidModel = errors.New("model is required")

	// ErrClientCreationFailed indicates a failure in creating the API client.
	ErrClientCreationFailed = errors.New("failed to create API client")

	// ErrGenerationFailed indicates the request to the model failed.
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrEmptyResponse indicates the model replied without any text.
	ErrEmptyResponse = errors.New("empty response from model")
)
