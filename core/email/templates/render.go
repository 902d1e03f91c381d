package templates

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/a-h/templ"
)

// Placeholder is the token a newsletter document carries where the rendered
// stories are inserted.
const Placeholder = "{{NEWS_ITEMS_PLACEHOLDER}}"

var (
	// ErrTemplateNotFound is returned when the template document cannot be read.
	ErrTemplateNotFound = errors.New("template document not found")

	// ErrPlaceholderNotFound is returned when the document lacks the placeholder token.
	ErrPlaceholderNotFound = errors.New("placeholder token not found in template")
)

// Render takes a templ.Component and renders it to a string.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ReadDocument loads a template document from disk.
func ReadDocument(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, path, err)
	}
	return string(b), nil
}

// Substitute replaces the first occurrence of placeholder in doc with fragment.
// Any later occurrences are left as they are.
func Substitute(doc, placeholder, fragment string) (string, error) {
	if placeholder == "" || !strings.Contains(doc, placeholder) {
		return "", fmt.Errorf("%w: %q", ErrPlaceholderNotFound, placeholder)
	}
	return strings.Replace(doc, placeholder, fragment, 1), nil
}

// RenderInto renders the component and substitutes it for Placeholder in doc.
func RenderInto(ctx context.Context, doc string, tpl templ.Component) (string, error) {
	fragment, err := Render(ctx, tpl)
	if err != nil {
		return "", err
	}
	return Substitute(doc, Placeholder, fragment)
}
