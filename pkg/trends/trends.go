package trends

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/roundup/core/sanitizer"
	"github.com/dmitrymomot/roundup/core/validator"
)

// Expected number of items per newsletter. Counts outside the range are
// accepted; callers may log them.
const (
	MinItems = 5
	MaxItems = 7
)

// NewsItem is a single trend entry produced by the generative service.
type NewsItem struct {
	Headline string `json:"headline" sanitize:"text" validate:"required"`
	Summary  string `json:"summary" sanitize:"text" validate:"required"`
}

// Prompt builds the instruction sent to the generative service for topic.
func Prompt(topic string) string {
	return fmt.Sprintf(
		"Based on the topic %q, generate a list of %d to %d important and current trends.\n"+
			"For each trend, provide a concise, engaging headline and a short summary (1-2 sentences).\n"+
			"Return the result as a valid JSON array of objects, where each object has a \"headline\" and a \"summary\" key.",
		topic, MinItems, MaxItems,
	)
}

// StripFences removes Markdown code fences (``` with or without a json tag)
// wherever they appear and trims surrounding whitespace.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Parse converts a model reply into a validated list of items.
// The reply may be wrapped in code fences. It must be a JSON array of objects,
// each with non-blank headline and summary strings.
func Parse(text string) ([]NewsItem, error) {
	payload := StripFences(text)
	if payload == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyList
	}

	items := make([]NewsItem, 0, len(raw))
	for i, msg := range raw {
		item, err := decodeItem(msg)
		if err != nil {
			return nil, &ItemError{Index: i, Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeItem(msg json.RawMessage) (NewsItem, error) {
	var item NewsItem
	if !bytes.HasPrefix(bytes.TrimSpace(msg), []byte("{")) {
		return item, fmt.Errorf("%w: element is not an object", ErrMalformedResponse)
	}
	// A non-string headline or summary is a shape error, not a missing field.
	if err := json.Unmarshal(msg, &item); err != nil {
		return item, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := sanitizer.SanitizeStruct(&item); err != nil {
		return item, err
	}
	if err := validator.ValidateStruct(&item); err != nil {
		return item, err
	}
	return item, nil
}

// InExpectedRange reports whether n falls within [MinItems, MaxItems].
func InExpectedRange(n int) bool {
	return n >= MinItems && n <= MaxItems
}

// ItemError reports which element of the reply failed to decode or validate.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Is makes every ItemError match ErrInvalidItem.
func (e *ItemError) Is(target error) bool {
	return target == ErrInvalidItem
}

// MissingFields returns the json names of absent or blank fields, if the
// failure was a validation failure.
func (e *ItemError) MissingFields() []string {
	var verrs validator.ValidationErrors
	if errors.As(e.Err, &verrs) {
		return verrs.Fields()
	}
	return nil
}
