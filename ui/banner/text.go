package banner

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Text is escaped literal text content.
type Text string

// Render implements element.Component
func (t Text) Render(b *element.Builder) (x any) {
	b.T(html.EscapeString(string(t)))
	return
}
