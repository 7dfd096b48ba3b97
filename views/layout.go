package views

import (
	"html"

	"github.com/rohanthewiz/element"

	"bannerkit/views/components"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// BaseLayout creates the base HTML structure for all gallery pages
// Takes a page title, extra CSS, and a body component
func BaseLayout(title, styles string, bodyComponent element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(html.EscapeString(title) + " - bannerkit"),

			b.Link("rel", "stylesheet", "href", "/static/css/base.css"),
			// Generated from the theme tokens
			b.Link("rel", "stylesheet", "href", "/styles/banner.css"),

			// HTMX posts dismissals and swaps the banner out
			b.Script("src", htmxSrc).R(),

			b.Wrap(func() {
				if styles != "" {
					b.Style().T(styles)
				}
			}),
		),
		b.Body().R(
			element.RenderComponents(b, bodyComponent),
		),
	)

	return b.String()
}

// NavItem is one entry of the gallery navigation
type NavItem = components.NavItem

// PageWithNav creates a page with the gallery header and story sidebar
type PageWithNav struct {
	Title       string
	Environment string
	Checks      bool
	Nav         []NavItem
	ActivePage  string
	Content     element.Component
}

func (p PageWithNav) Render(b *element.Builder) (x any) {
	b.DivClass("app-container").R(
		element.RenderComponents(b, components.Sidebar{
			Items:      p.Nav,
			ActivePage: p.ActivePage,
		}),

		b.DivClass("main-content").R(
			element.RenderComponents(b, components.Header{
				Title:       p.Title,
				Environment: p.Environment,
				Checks:      p.Checks,
			}),

			b.Main("id", "content-wrapper", "class", "content-wrapper").R(
				element.RenderComponents(b, p.Content),
			),
		),
	)
	return
}
