package comps

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Heading opens a gallery page.
type Heading struct {
	Title   string
	Summary string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.DivClass("page-heading").R(
		b.H1().T(html.EscapeString(h.Title)),
		b.Wrap(func() {
			if h.Summary != "" {
				b.PClass("page-summary").T(html.EscapeString(h.Summary))
			}
		}),
	)
	return
}
