package components

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Header component for the gallery
type Header struct {
	Title       string
	Environment string
	Checks      bool
}

func (h Header) Render(b *element.Builder) (x any) {
	b.Header("id", "main-header").R(
		b.DivClass("header-content").R(
			b.DivClass("header-left").R(
				b.H1Class("app-title").R(
					b.A("href", "/").T("bannerkit"),
				),
				b.SpanClass("page-title").T(html.EscapeString(h.Title)),
			),

			// Environment badge
			b.DivClass("header-right").R(
				b.Span("class", "env-badge", "data-env", h.Environment).T(h.Environment),
				b.Span("class", "checks-badge", "title", "Accessible title check").T(h.checksLabel()),
			),
		),
	)
	return
}

func (h Header) checksLabel() string {
	if h.Checks {
		return "checks on"
	}
	return "checks off"
}
