// Package sanitizer cleans strings in place using struct tags.
//
// Sanitizers are listed in a `sanitize` tag and applied left to right:
//
//	type NewsItem struct {
//		Headline string `json:"headline" sanitize:"text"`
//		Summary  string `json:"summary" sanitize:"text,max:600"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&item); err != nil {
//		return err
//	}
//
// Built-in names: trim, lower, kebab, snake, single_line, no_spaces,
// strip_html, alphanum, no_control, filename and text. "max:N" truncates to N
// runes. Unknown names are ignored. A tag of "-" skips the field.
//
// Nested structs and pointers to structs are always walked. String slices are
// sanitized element by element when tagged.
//
// Custom sanitizers can be added with RegisterSanitizer.
package sanitizer
