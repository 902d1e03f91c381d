package textgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible endpoint.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

var _ Generator = (*OpenAI)(nil)

// OpenAI generates text through the chat completions API.
// By default it talks to Gemini's OpenAI-compatible endpoint, so the same
// Gemini API key works for both backends.
type OpenAI struct {
	client     openai.Client
	model      string
	baseURL    string
	httpClient *http.Client
}

// OpenAIOption is a functional option for configuring OpenAI.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel sets the model to use.
func WithOpenAIModel(model string) OpenAIOption {
	return func(o *OpenAI) {
		o.model = model
	}
}

// WithOpenAIBaseURL points the client at another OpenAI-compatible endpoint.
func WithOpenAIBaseURL(baseURL string) OpenAIOption {
	return func(o *OpenAI) {
		o.baseURL = baseURL
	}
}

// WithOpenAIHTTPClient sets a custom HTTP client.
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(o *OpenAI) {
		o.httpClient = client
	}
}

// NewOpenAI creates a chat completions generator.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	o := &OpenAI{
		model:   DefaultModel,
		baseURL: GeminiOpenAIBaseURL,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.model == "" {
		return nil, ErrInvalidModel
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(o.baseURL),
		option.WithMaxRetries(0),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(o.httpClient))
	}
	o.client = openai.NewClient(clientOpts...)

	return o, nil
}

// Model returns the configured model id.
func (o *OpenAI) Model() string {
	return o.model
}

func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
