package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/roundup/pkg/trends"
)

// Image sources used by the story fragments.
const (
	LeadImageURL = "https://images.unsplash.com/photo-1677756119517-756a188d2d94?q=80&w=1470&auto=format&fit=crop"
	IconImageURL = "https://placehold.co/50x50/2563EB/FFFFFF?text=i&font=arial"
)

// Markers carried by each fragment's outer row.
const (
	LeadMarker      = `data-story="lead"`
	SecondaryMarker = `data-story="secondary"`
)

// LeadStory renders the first item: hero image, headline bar and summary box.
func LeadStory(item trends.NewsItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<tr `+LeadMarker+`><td>`,
			`<img src="`+LeadImageURL+`" width="100%" style="max-width: 100%; height: auto; display: block;" alt="Main Story">`,
			`<table border="0" cellpadding="0" cellspacing="0" width="100%">`,
			`<tr><td bgcolor="#0d3d8a" style="padding: 20px; color: #ffffff; font-family: Arial, sans-serif;">`,
			`<h2 style="margin: 0; font-size: 22px;">`, templ.EscapeString(item.Headline), `</h2>`,
			`</td></tr>`,
			`<tr><td style="padding: 20px; border: 1px solid #dddddd; border-top: 0; font-family: Arial, sans-serif; font-size: 15px; color: #555; line-height: 1.6;">`,
			templ.EscapeString(item.Summary),
			`</td></tr></table>`,
			`</td></tr>`,
			spacer(25),
		)
	})
}

// SecondaryStory renders a compact entry: icon, sub-heading and body text.
func SecondaryStory(item trends.NewsItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<tr `+SecondaryMarker+`><td>`,
			`<table border="0" cellpadding="0" cellspacing="0" width="100%"><tr>`,
			`<td width="60" valign="top"><img src="`+IconImageURL+`" width="50" height="50" style="border-radius: 50%;" alt=""></td>`,
			`<td valign="top" style="padding-left: 15px; font-family: Arial, sans-serif;">`,
			`<h3 style="margin: 0 0 5px 0; font-size: 18px; color: #333;">`, templ.EscapeString(item.Headline), `</h3>`,
			`<p style="margin: 0; font-size: 14px; color: #666; line-height: 1.5;">`, templ.EscapeString(item.Summary), `</p>`,
			`</td></tr></table>`,
			`</td></tr>`,
			spacer(20),
		)
	})
}

// Stories renders items in order. Index 0 is the lead story; every other
// index is a secondary story.
func Stories(items []trends.NewsItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, item := range items {
			c := SecondaryStory(item)
			if i == 0 {
				c = LeadStory(item)
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func spacer(height int) string {
	return `<tr><td style="font-size: 0; line-height: 0;" height="` + strconv.Itoa(height) + `">&nbsp;</td></tr>`
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
