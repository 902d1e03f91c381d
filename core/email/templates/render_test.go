package templates_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/roundup/core/email/templates"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := templates.Render(context.Background(), text("<p>hi</p>"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", out)
}

func TestRender_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error { return boom })

	_, err := templates.Render(context.Background(), failing)
	assert.ErrorIs(t, err, boom)
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		want    string
		wantErr error
	}{
		{
			name: "single token",
			doc:  "<table>{{NEWS_ITEMS_PLACEHOLDER}}</table>",
			want: "<table><tr/></table>",
		},
		{
			name: "only first occurrence replaced",
			doc:  "{{NEWS_ITEMS_PLACEHOLDER}}|{{NEWS_ITEMS_PLACEHOLDER}}",
			want: "<tr/>|{{NEWS_ITEMS_PLACEHOLDER}}",
		},
		{
			name:    "missing token",
			doc:     "<table></table>",
			wantErr: templates.ErrPlaceholderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := templates.Substitute(tt.doc, templates.Placeholder, "<tr/>")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tpl.html")
	require.NoError(t, os.WriteFile(path, []byte("<html>{{NEWS_ITEMS_PLACEHOLDER}}</html>"), 0644))

	doc, err := templates.ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>{{NEWS_ITEMS_PLACEHOLDER}}</html>", doc)

	_, err = templates.ReadDocument(filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
}

func TestRenderInto(t *testing.T) {
	t.Parallel()

	out, err := templates.RenderInto(context.Background(), "<body>{{NEWS_ITEMS_PLACEHOLDER}}</body>", text("<tr>x</tr>"))
	require.NoError(t, err)
	assert.Equal(t, "<body><tr>x</tr></body>", out)
}
