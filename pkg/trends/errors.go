package trends

import "errors"

var (
	// ErrMalformedResponse indicates the reply is not a JSON array of objects.
	ErrMalformedResponse = errors.New("malformed generator response")

	// ErrEmptyList indicates the reply is a valid but empty array.
	ErrEmptyList = errors.New("generator returned no items")

	// ErrInvalidItem is matched by every *ItemError.
	ErrInvalidItem = errors.New("invalid news item")
)
