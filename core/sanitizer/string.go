package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts the string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToKebabCase prevents consecutive dashes and ensures clean URL-safe identifiers.
func ToKebabCase(s string) string {
	return joinWords(s, '-')
}

// ToSnakeCase prevents consecutive underscores. Used for file names.
func ToSnakeCase(s string) string {
	return joinWords(s, '_')
}

func joinWords(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune(sep)
			prevSep = true
		}
	}

	return strings.Trim(b.String(), string(sep))
}

// MaxLength truncates to maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveExtraWhitespace collapses runs of whitespace into a single space and trims.
func RemoveExtraWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// RemoveControlChars drops control characters except newline, carriage return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes tags and decodes entities.
func StripHTML(s string) string {
	stripped := htmlTagRegex.ReplaceAllString(s, "")
	return html.UnescapeString(stripped)
}

// KeepAlphanumeric keeps letters, digits and spaces.
func KeepAlphanumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// SingleLine converts multi-line strings to single line by replacing line breaks with spaces.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	return RemoveExtraWhitespace(s)
}

// Filename turns s into a lower-case snake_case name of at most 100 runes.
// It never returns an empty string.
func Filename(s string) string {
	name := MaxLength(ToSnakeCase(s), 100)
	if name == "" {
		return "email"
	}
	return name
}
