// Package components holds the templ components that make up a newsletter
// page body.
//
// Stories(items) renders the whole list: the first item as LeadStory, with a
// hero image and a coloured headline bar, and every later item as
// SecondaryStory, with a round icon, an <h3> headline and a <p> summary.
// Order is preserved and no other logic picks the lead.
//
// All item text is HTML-escaped. Output depends only on the items, so
// rendering the same list twice yields identical bytes.
//
// Each fragment's outer row carries LeadMarker or SecondaryMarker, which makes
// fragments easy to count in a rendered page:
//
//	page, _ := templates.Render(ctx, components.Stories(items))
//	strings.Count(page, components.SecondaryMarker)
package components
