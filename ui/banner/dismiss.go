package banner

import (
	"html"

	"github.com/rohanthewiz/element"

	"bannerkit/ui/button"
	"bannerkit/ui/internal/attrs"
	"bannerkit/ui/octicons"
)

// DismissLabel is the accessible label of every dismiss control.
const DismissLabel = "Dismiss banner"

// Handler is a dismiss callback expressed as attributes on the dismiss control.
type Handler interface {
	Attrs() []string
}

// JS runs a JavaScript expression when the control is activated.
type JS string

// Attrs escapes the expression for use in a double-quoted attribute.
func (js JS) Attrs() []string {
	return []string{"onclick", html.EscapeString(string(js))}
}

// Post posts to a URL with htmx and replaces the banner with the response.
type Post string

func (p Post) Attrs() []string {
	return []string{
		"hx-post", html.EscapeString(string(p)),
		"hx-target", "closest .Banner",
		"hx-swap", "outerHTML",
	}
}

// Dismissible reports whether a dismiss control is rendered.
// Critical banners are never dismissible.
func Dismissible(v Variant, onDismiss Handler) bool {
	return v != Critical && onDismiss != nil
}

// dismissControl is the fixed dismiss button. The handler contributes only
// behaviour; icon, label and variant cannot be overridden.
func dismissControl(h Handler) element.Component {
	return button.IconButton{
		Icon:    octicons.X,
		Label:   DismissLabel,
		Variant: button.Invisible,
		Attrs:   attrs.Merge(attrs.Without(h.Attrs(), "aria-label", "data-variant"), "class", "BannerDismiss"),
	}
}
