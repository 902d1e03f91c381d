package textgen_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/roundup/pkg/textgen"
)

const reply = `[{"headline":"H","summary":"S"}]`

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := textgen.NewGoogle(context.Background(), "")
	assert.ErrorIs(t, err, textgen.ErrInvalidAPIKey)

	_, err = textgen.NewGoogle(context.Background(), "key", textgen.WithGoogleModel(""))
	assert.ErrorIs(t, err, textgen.ErrInvalidModel)

	_, err = textgen.NewOpenAI("")
	assert.ErrorIs(t, err, textgen.ErrInvalidAPIKey)

	_, err = textgen.NewOpenAI("key", textgen.WithOpenAIModel(""))
	assert.ErrorIs(t, err, textgen.ErrInvalidModel)

	o, err := textgen.NewOpenAI("key")
	require.NoError(t, err)
	assert.Equal(t, textgen.DefaultModel, o.Model())
}

func geminiServer(t *testing.T, status int, body string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, seen)
			(*seen)["_path"] = r.URL.Path
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func geminiReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
	return string(b)
}

func TestGoogle_Generate(t *testing.T) {
	t.Parallel()

	seen := map[string]any{}
	srv := geminiServer(t, http.StatusOK, geminiReply(reply), &seen)

	gen, err := textgen.NewGoogle(context.Background(), "test-key",
		textgen.WithGoogleBaseURL(srv.URL),
		textgen.WithGoogleModel("gemini-test"),
	)
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", gen.Model())

	text, err := gen.Generate(context.Background(), "list trends")
	require.NoError(t, err)
	assert.Equal(t, reply, text)

	assert.Contains(t, seen["_path"], "gemini-test:generateContent")
	raw, _ := json.Marshal(seen)
	assert.Contains(t, string(raw), "list trends")
	assert.Contains(t, string(raw), "application/json")
}

func TestGoogle_Generate_PlainText(t *testing.T) {
	t.Parallel()

	seen := map[string]any{}
	srv := geminiServer(t, http.StatusOK, geminiReply("plain"), &seen)

	gen, err := textgen.NewGoogle(context.Background(), "test-key",
		textgen.WithGoogleBaseURL(srv.URL),
		textgen.WithGoogleHTTPClient(srv.Client()),
		textgen.WithGoogleJSONResponse(false),
	)
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "plain", text)

	raw, _ := json.Marshal(seen)
	assert.NotContains(t, string(raw), "application/json")
}

func TestGoogle_Generate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty reply", func(t *testing.T) {
		t.Parallel()
		srv := geminiServer(t, http.StatusOK, geminiReply("  "), nil)
		gen, err := textgen.NewGoogle(context.Background(), "k", textgen.WithGoogleBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = gen.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, textgen.ErrEmptyResponse)
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()
		srv := geminiServer(t, http.StatusBadRequest,
			`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, nil)
		gen, err := textgen.NewGoogle(context.Background(), "k", textgen.WithGoogleBaseURL(srv.URL))
		require.NoError(t, err)

		_, err = gen.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, textgen.ErrGenerationFailed)
	})
}

func openAIReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 0,
		"model":   "gemini-2.5-flash",
		"choices": []any{
			map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	})
	return string(b)
}

func TestOpenAI_Generate(t *testing.T) {
	t.Parallel()

	var path, auth, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, openAIReply(reply))
	}))
	t.Cleanup(srv.Close)

	gen, err := textgen.NewOpenAI("gemini-key", textgen.WithOpenAIBaseURL(srv.URL+"/v1beta/openai/"))
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "list trends")
	require.NoError(t, err)
	assert.Equal(t, reply, text)

	assert.True(t, strings.HasSuffix(path, "/chat/completions"), path)
	assert.Equal(t, "Bearer gemini-key", auth)
	assert.Contains(t, body, `"model":"gemini-2.5-flash"`)
	assert.Contains(t, body, "list trends")
}

func TestOpenAI_Generate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, openAIReply(""))
		}))
		t.Cleanup(srv.Close)

		gen, err := textgen.NewOpenAI("k", textgen.WithOpenAIBaseURL(srv.URL))
		require.NoError(t, err)
		_, err = gen.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, textgen.ErrEmptyResponse)
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
		}))
		t.Cleanup(srv.Close)

		gen, err := textgen.NewOpenAI("k", textgen.WithOpenAIBaseURL(srv.URL), textgen.WithOpenAIHTTPClient(srv.Client()))
		require.NoError(t, err)
		_, err = gen.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, textgen.ErrGenerationFailed)
	})
}
