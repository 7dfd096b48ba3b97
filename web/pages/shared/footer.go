package shared

import "github.com/rohanthewiz/element"

// Footer links the generated stylesheet so it can be copied into other apps.
type Footer struct{}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "gallery-footer").R(
		b.P().R(
			b.T("Banner styles: "),
			b.A("href", "/styles/banner.css").T("/styles/banner.css"),
		),
	)
	return nil
}
