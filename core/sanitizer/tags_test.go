package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/roundup/core/sanitizer"
)

func TestSanitizeStruct_BasicFields(t *testing.T) {
	t.Parallel()

	type TestStruct struct {
		Headline string `sanitize:"text"`
		Slug     string `sanitize:"kebab"`
		File     string `sanitize:"filename"`
		Short    string `sanitize:"trim,max:5"`
		NoTag    string
		Skip     string `sanitize:"-"`
	}

	input := TestStruct{
		Headline: "  Agents\n go\tmainstream\x00 ",
		Slug:     "  AI Weekly Roundup! ",
		File:     "Your AI Weekly Roundup!",
		Short:    "  abcdefgh  ",
		NoTag:    "  not sanitized  ",
		Skip:     "  skip this  ",
	}

	require.NoError(t, sanitizer.SanitizeStruct(&input))
	assert.Equal(t, TestStruct{
		Headline: "Agents go mainstream",
		Slug:     "ai-weekly-roundup",
		File:     "your_ai_weekly_roundup",
		Short:    "abcde",
		NoTag:    "  not sanitized  ",
		Skip:     "  skip this  ",
	}, input)
}

func TestSanitizeStruct_RegisteredNames(t *testing.T) {
	t.Parallel()

	type S struct {
		Kebab     string `sanitize:"kebab"`
		Snake     string `sanitize:"snake"`
		Plain     string `sanitize:"strip_html,no_spaces"`
		Alnum     string `sanitize:"trim,alphanum"`
		Lower     string `sanitize:"lower"`
		OneLine   string `sanitize:"single_line"`
		NoControl string `sanitize:"no_control"`
		Unknown   string `sanitize:"does_not_exist"`
	}

	v := S{
		Kebab:     "AI Weekly Roundup",
		Snake:     "AI Weekly Roundup",
		Plain:     "<p>Tom   &amp;\n Jerry</p>",
		Alnum:     " Agents! 2025 ",
		Lower:     "LOUD",
		OneLine:   "a\nb",
		NoControl: "a\x07b",
		Unknown:   " kept ",
	}

	require.NoError(t, sanitizer.SanitizeStruct(&v))
	assert.Equal(t, S{
		Kebab:     "ai-weekly-roundup",
		Snake:     "ai_weekly_roundup",
		Plain:     "Tom & Jerry",
		Alnum:     "Agents 2025",
		Lower:     "loud",
		OneLine:   "a b",
		NoControl: "ab",
		Unknown:   " kept ",
	}, v)
}

func TestSanitizeStruct_Nested(t *testing.T) {
	t.Parallel()

	type Inner struct {
		Value string `sanitize:"trim,lower"`
	}
	type Outer struct {
		Inner Inner
		Ptr   *Inner
		Tags  []string `sanitize:"trim"`
		Name  *string  `sanitize:"trim"`
	}

	name := "  name  "
	v := Outer{
		Inner: Inner{Value: "  ONE "},
		Ptr:   &Inner{Value: " TWO  "},
		Tags:  []string{" a ", "b  "},
		Name:  &name,
	}

	require.NoError(t, sanitizer.SanitizeStruct(&v))
	assert.Equal(t, "one", v.Inner.Value)
	assert.Equal(t, "two", v.Ptr.Value)
	assert.Equal(t, []string{"a", "b"}, v.Tags)
	assert.Equal(t, "name", name)
}

func TestSanitizeStruct_InvalidInput(t *testing.T) {
	t.Parallel()

	type S struct{ A string }

	assert.Error(t, sanitizer.SanitizeStruct(S{}))
	s := "x"
	assert.Error(t, sanitizer.SanitizeStruct(&s))
}

func TestRegisterSanitizer(t *testing.T) {
	t.Parallel()

	sanitizer.RegisterSanitizer("shout_test", strings.ToUpper)

	type S struct {
		A string `sanitize:"trim,shout_test"`
	}
	v := S{A: " hi "}
	require.NoError(t, sanitizer.SanitizeStruct(&v))
	assert.Equal(t, "HI", v.A)
}

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"single line", sanitizer.SingleLine, "a\r\nb\n\nc", "a b c"},
		{"extra whitespace", sanitizer.RemoveExtraWhitespace, "  a   b  ", "a b"},
		{"control chars", sanitizer.RemoveControlChars, "a\x00b\x07c\nd", "abc\nd"},
		{"strip html", sanitizer.StripHTML, "<b>Tom</b> &amp; Jerry", "Tom & Jerry"},
		{"alphanumeric", sanitizer.KeepAlphanumeric, "User_123!", "User123"},
		{"snake", sanitizer.ToSnakeCase, "Weekly--Roundup 2025", "weekly_roundup_2025"},
		{"kebab", sanitizer.ToKebabCase, "__Weekly Roundup__", "weekly-roundup"},
		{"filename empty", sanitizer.Filename, "!!!", "email"},
		{"filename long", sanitizer.Filename, strings.Repeat("a", 150), strings.Repeat("a", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestMaxLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", sanitizer.MaxLength("abc", 0))
	assert.Equal(t, "abc", sanitizer.MaxLength("abc", 5))
	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
}
