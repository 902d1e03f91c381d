package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// ValidatorFunc is a function that validates a value and returns a Rule
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"email":    emailValidator,
		"in":       inValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its `validate` field tags.
// Rules are separated by semicolons; parameters follow a colon and are
// comma-separated, e.g. `validate:"required;in:smtp,postmark"`.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("validator: must pass a pointer to struct")
	}

	var errors ValidationErrors
	validateStructRecursive(rv, "", &errors)

	if errors.IsEmpty() {
		return nil
	}
	return errors
}

func validateStructRecursive(rv reflect.Value, prefix string, errors *ValidationErrors) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("validate")

		fieldPath := fieldName(structField)
		if prefix != "" {
			fieldPath = prefix + "." + fieldPath
		}

		if tag == "-" {
			continue
		}

		if field.Kind() == reflect.Struct && tag == "" {
			validateStructRecursive(field, fieldPath, errors)
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				if tag != "" {
					validateField(fieldPath, field, tag, errors)
				}
			} else {
				elem := field.Elem()
				if elem.Kind() == reflect.Struct && tag == "" {
					validateStructRecursive(elem, fieldPath, errors)
				} else if tag != "" {
					validateField(fieldPath, elem, tag, errors)
				}
			}
			continue
		}

		if tag == "" {
			continue
		}

		validateField(fieldPath, field, tag, errors)
	}
}

// fieldName prefers the json name so reported fields match the wire format.
func fieldName(f reflect.StructField) string {
	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return f.Name
}

func validateField(fieldPath string, field reflect.Value, tag string, errors *ValidationErrors) {
	rules := strings.Split(tag, ";")

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range rules {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		parts := strings.SplitN(ruleStr, ":", 2)
		ruleName := strings.TrimSpace(parts[0])

		var params []string
		if len(parts) > 1 {
			paramStr := strings.TrimSpace(parts[1])
			if paramStr != "" {
				params = strings.Split(paramStr, ",")
				for i := range params {
					params[i] = strings.TrimSpace(params[i])
				}
			}
		}

		if validatorFn, ok := registry[ruleName]; ok {
			rule := validatorFn(fieldPath, field, params)
			if !rule.Check() {
				errors.Add(rule.Error)
			}
		}
	}
}

// Built-in validators

func requiredValidator(field string, value reflect.Value, params []string) Rule {
	return Rule{
		Check: func() bool {
			switch value.Kind() {
			case reflect.String:
				return strings.TrimSpace(value.String()) != ""
			case reflect.Slice, reflect.Map, reflect.Array:
				return value.Len() > 0
			case reflect.Pointer, reflect.Interface:
				return !value.IsNil()
			default:
				return !value.IsZero()
			}
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

func minValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}

	switch value.Kind() {
	case reflect.String:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return utf8.RuneCountInString(value.String()) >= min },
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at least %d characters", min),
				TranslationKey: "validation.min_length",
			},
		}
	case reflect.Slice, reflect.Array:
		min, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() >= min },
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must have at least %d items", min),
				TranslationKey: "validation.min_items",
			},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() >= min },
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at least %d", min),
				TranslationKey: "validation.min",
			},
		}
	default:
		return Rule{Check: func() bool { return true }}
	}
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}

	switch value.Kind() {
	case reflect.String:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return utf8.RuneCountInString(value.String()) <= max },
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at most %d characters", max),
				TranslationKey: "validation.max_length",
			},
		}
	case reflect.Slice, reflect.Array:
		max, _ := strconv.Atoi(params[0])
		return Rule{
			Check: func() bool { return value.Len() <= max },
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must have at most %d items", max),
				TranslationKey: "validation.max_items",
			},
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		max, _ := strconv.ParseInt(params[0], 10, 64)
		return Rule{
			Check: func() bool { return value.Int() <= max },
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at most %d", max),
				TranslationKey: "validation.max",
			},
		}
	default:
		return Rule{Check: func() bool { return true }}
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func emailValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return Rule{
		Check: func() bool { return emailRegex.MatchString(value.String()) },
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
		},
	}
}

func inValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return Rule{
		Check: func() bool { return slices.Contains(params, value.String()) },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(params, ", ")),
			TranslationKey: "validation.in",
		},
	}
}

// IsEmail reports whether s looks like a single email address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}
