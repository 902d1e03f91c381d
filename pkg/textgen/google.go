package textgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

var _ Generator = (*Google)(nil)

// Google generates text with the Gemini API through google.golang.org/genai.
type Google struct {
	client     *genai.Client
	model      string
	jsonOutput bool
	httpClient *http.Client
	baseURL    string
}

type GoogleOption func(*Google)

func WithGoogleModel(model string) GoogleOption {
	return func(g *Google) {
		g.model = model
	}
}

// WithGoogleJSONResponse asks the model to reply with application/json.
// Enabled by default.
func WithGoogleJSONResponse(enabled bool) GoogleOption {
	return func(g *Google) {
		g.jsonOutput = enabled
	}
}

func WithGoogleHTTPClient(client *http.Client) GoogleOption {
	return func(g *Google) {
		g.httpClient = client
	}
}

// WithGoogleBaseURL overrides the API endpoint, e.g. for a proxy or a test server.
func WithGoogleBaseURL(baseURL string) GoogleOption {
	return func(g *Google) {
		g.baseURL = baseURL
	}
}

func NewGoogle(ctx context.Context, apiKey string, opts ...GoogleOption) (*Google, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	g := &Google{
		model:      DefaultModel,
		jsonOutput: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.model == "" {
		return nil, ErrInvalidModel
	}

	config := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, errors.Join(ErrClientCreationFailed, err)
	}
	g.client = client

	return g, nil
}

// Model returns the configured model id.
func (g *Google) Model() string {
	return g.model
}

func (g *Google) Generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{}
	if g.jsonOutput {
		config.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if resp == nil {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
