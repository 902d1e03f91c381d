// Package trends turns a topic into a generation prompt and a model reply into
// NewsItem values.
//
//	text, err := gen.Generate(ctx, trends.Prompt("AI"))
//	if err != nil {
//		return err
//	}
//	items, err := trends.Parse(text)
//
// Parse tolerates Markdown code fences around the JSON. Anything else that is
// not an array of {"headline","summary"} objects fails with ErrMalformedResponse,
// ErrEmptyList or an *ItemError. Nothing is retried or patched up.
package trends
