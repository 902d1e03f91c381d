package validator

import (
	"errors"
	"strings"
)

// ErrValidation is matched by errors.Is for every ValidationErrors value.
var ErrValidation = errors.New("validation failed")

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// ValidationError describes a single failed rule on a field.
type ValidationError struct {
	Field          string
	Message        string
	TranslationKey string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every failed rule of a struct.
type ValidationErrors []ValidationError

// Add appends a failed rule.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether no rule failed.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether the named field has at least one failed rule.
func (e ValidationErrors) Has(field string) bool {
	for _, v := range e {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Fields returns the failed field names in order, without duplicates.
func (e ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(e))
	for _, v := range e {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return strings.Join(parts, "; ")
}

func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
