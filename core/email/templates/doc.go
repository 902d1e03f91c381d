// Package templates renders templ components into newsletter documents.
//
// A newsletter document is a static HTML file that contains the Placeholder
// token exactly once. RenderInto renders a component and puts the result where
// the token was:
//
//	import (
//		"github.com/dmitrymomot/roundup/core/email/templates"
//		"github.com/dmitrymomot/roundup/core/email/templates/components"
//	)
//
//	doc, err := templates.ReadDocument("newsletter-template.html")
//	if err != nil {
//		return err
//	}
//
//	page, err := templates.RenderInto(ctx, doc, components.Stories(items))
//	if err != nil {
//		return err
//	}
//
// Only the first occurrence of the token is replaced. A document without the
// token yields ErrPlaceholderNotFound.
//
// Render alone converts any templ.Component to a string, which is handy for
// mail bodies built entirely from components.
package templates
