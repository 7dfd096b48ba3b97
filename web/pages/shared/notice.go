package shared

import (
	"github.com/rohanthewiz/element"

	"bannerkit/ui/banner"
)

// Notice tells the reader whether rendered stories are checked for an
// accessible title. It is itself a banner.
type Notice struct {
	Checks bool
}

func (n Notice) Render(b *element.Builder) any {
	const onText = "Every story page is verified after rendering. " +
		"A banner without an accessible title fails the page."

	props := banner.Props{
		Variant:     banner.Success,
		Title:       banner.Text("Title checks are on"),
		Description: banner.Text(onText),
		Attrs:       []string{"id", "gallery-notice"},
	}
	if !n.Checks {
		props.Variant = banner.Warning
		props.Title = banner.Text("Title checks are off")
		props.Description = banner.Text("Set BANNERKIT_CHECKS=true to verify story pages.")
	}
	return banner.New(props).Render(b)
}
