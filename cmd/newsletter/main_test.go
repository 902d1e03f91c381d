package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv() map[string]string {
	return map[string]string{
		"GEMINI_API_KEY":    "test-key",
		"SMTP_HOST":         "smtp.example.com",
		"SMTP_PORT":         "465",
		"SMTP_USER":         "news@example.com",
		"SMTP_PASS":         "secret",
		"RECIPIENT_EMAILS":  "a@example.com",
		"NEWSLETTER_PROMPT": "AI",
	}
}

// lastRecord decodes the final JSON log line written by run.
func lastRecord(t *testing.T, out *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestRun_ConfigurationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(env map[string]string)
		missing []any
	}{
		{
			name:    "missing variable",
			mutate:  func(env map[string]string) { delete(env, "SMTP_PASS") },
			missing: []any{"SMTP_PASS"},
		},
		{
			name:    "empty variable",
			mutate:  func(env map[string]string) { env["NEWSLETTER_PROMPT"] = "" },
			missing: []any{"NEWSLETTER_PROMPT"},
		},
		{
			name:   "unknown transport",
			mutate: func(env map[string]string) { env["MAIL_TRANSPORT"] = "pigeon" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := validEnv()
			tt.mutate(env)

			var out bytes.Buffer
			code := run(context.Background(), env, &out)
			assert.Equal(t, 1, code)

			rec := lastRecord(t, &out)
			assert.Equal(t, "ERROR", rec["level"])
			assert.Equal(t, "Failed to load configuration", rec["msg"])
			assert.Equal(t, "configuring", rec["component"])
			assert.NotEmpty(t, rec["run_id"])
			assert.NotEmpty(t, rec["error"])
			if tt.missing != nil {
				assert.Equal(t, tt.missing, rec["missing"])
			}
		})
	}
}

func TestRun_GenerationFailure(t *testing.T) {
	t.Parallel()

	env := validEnv()
	env["GENERATOR_BACKEND"] = "openai"
	env["OUTPUT_DIR"] = t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	code := run(ctx, env, &out)
	assert.Equal(t, 1, code)

	rec := lastRecord(t, &out)
	assert.Equal(t, "Newsletter run failed", rec["msg"])
	assert.Equal(t, "generating", rec["component"])
	assert.NotEmpty(t, rec["run_id"])
	assert.Contains(t, rec["error"], "generating")
}
