// Package textgen sends a prompt to a generative model and returns the raw reply.
//
// Two Generator implementations share one interface:
//
//   - Google uses google.golang.org/genai against the Gemini API and, by
//     default, asks for an application/json reply.
//   - OpenAI uses github.com/openai/openai-go chat completions against
//     Gemini's OpenAI-compatible endpoint. Point it elsewhere with
//     WithOpenAIBaseURL.
//
// Both default to DefaultModel and never retry.
//
//	gen, err := textgen.NewGoogle(ctx, apiKey, textgen.WithGoogleModel("gemini-2.5-flash"))
//	if err != nil {
//		return err
//	}
//	reply, err := gen.Generate(ctx, prompt)
//
// Errors: ErrInvalidAPIKey and ErrInvalidModel come from the constructors.
// Generate returns ErrGenerationFailed wrapping the transport or API error,
// or ErrEmptyResponse when the model replied with no text.
package textgen
