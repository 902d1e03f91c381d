package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"kebab":       ToKebabCase,
		"snake":       ToSnakeCase,
		"single_line": SingleLine,
		"no_spaces":   RemoveExtraWhitespace,
		"strip_html":  StripHTML,
		"alphanum":    KeepAlphanumeric,
		"no_control":  RemoveControlChars,
		"filename":    Filename,

		// Plain model text: printable, one line, no markup.
		"text": func(s string) string {
			return SingleLine(RemoveControlChars(s))
		},
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct applies sanitization to struct fields based on their tags
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	return sanitizeStructRecursive(rv)
}

func sanitizeStructRecursive(rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("sanitize")

		// Skip if tag is "-"
		if tag == "-" {
			continue
		}

		// Handle different field types
		switch field.Kind() {
		case reflect.String:
			if tag == "" {
				continue // Skip strings without tags
			}
			value := field.String()
			sanitized, err := applySanitizers(value, tag)
			if err != nil {
				return err
			}
			field.SetString(sanitized)

		case reflect.Pointer:
			if !field.IsNil() {
				elem := field.Elem()
				if elem.Kind() == reflect.String {
					if tag != "" {
						value := elem.String()
						sanitized, err := applySanitizers(value, tag)
						if err != nil {
							return err
						}
						elem.SetString(sanitized)
					}
				} else if elem.Kind() == reflect.Struct {
					// Always recursively process nested structs
					if err := sanitizeStructRecursive(elem); err != nil {
						return err
					}
				}
			}

		case reflect.Struct:
			// Always recursively sanitize nested structs
			if err := sanitizeStructRecursive(field); err != nil {
				return err
			}

		case reflect.Slice:
			// Handle slices of strings only if tag is present
			if tag != "" && field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					elem := field.Index(j)
					value := elem.String()
					sanitized, err := applySanitizers(value, tag)
					if err != nil {
						return err
					}
					elem.SetString(sanitized)
				}
			}
		}
	}

	return nil
}

func applySanitizers(value string, tag string) (string, error) {
	sanitizers := strings.Split(tag, ",")
	result := value

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, sanitizerName := range sanitizers {
		sanitizerName = strings.TrimSpace(sanitizerName)
		if sanitizerName == "" {
			continue
		}

		// Handle max length special case: max:100
		if strings.HasPrefix(sanitizerName, "max:") {
			parts := strings.Split(sanitizerName, ":")
			if len(parts) == 2 {
				// Parse the number after "max:"
				var maxLen int
				_, _ = fmt.Sscanf(parts[1], "%d", &maxLen)
				if maxLen > 0 {
					result = MaxLength(result, maxLen)
				}
			}
			continue
		}

		if fn, ok := registry[sanitizerName]; ok {
			result = fn(result)
		}
	}

	return result, nil
}
