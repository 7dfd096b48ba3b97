// Package octicons renders the small set of 16px SVG icons the ui packages need.
package octicons

import (
	"sort"
	"strconv"

	"github.com/rohanthewiz/element"

	"bannerkit/ui/internal/attrs"
)

// Icon names.
const (
	Info        = "info"
	Stop        = "stop"
	CheckCircle = "check-circle"
	Alert       = "alert"
	X           = "x"
)

var paths = map[string]string{
	Info:        `M0 8a8 8 0 1 1 16 0A8 8 0 0 1 0 8Zm8-6.5a6.5 6.5 0 1 0 0 13 6.5 6.5 0 0 0 0-13ZM6.5 7.75A.75.75 0 0 1 7.25 7h1a.75.75 0 0 1 .75.75v2.75h.25a.75.75 0 0 1 0 1.5h-2a.75.75 0 0 1 0-1.5h.25v-2h-.25a.75.75 0 0 1-.75-.75ZM8 6a1 1 0 1 1 0-2 1 1 0 0 1 0 2Z`,
	Stop:        `M4.47.22A.749.749 0 0 1 5 0h6c.199 0 .389.079.53.22l4.25 4.25c.141.14.22.331.22.53v6a.749.749 0 0 1-.22.53l-4.25 4.25A.749.749 0 0 1 11 16H5a.749.749 0 0 1-.53-.22L.22 11.53A.749.749 0 0 1 0 11V5c0-.199.079-.389.22-.53Zm.84 1.28L1.5 5.31v5.38l3.81 3.81h5.38l3.81-3.81V5.31L10.69 1.5ZM8 4a.75.75 0 0 1 .75.75v3.5a.75.75 0 0 1-1.5 0v-3.5A.75.75 0 0 1 8 4Zm0 8a1 1 0 1 1 0-2 1 1 0 0 1 0 2Z`,
	CheckCircle: `M0 8a8 8 0 1 1 16 0A8 8 0 0 1 0 8Zm1.5 0a6.5 6.5 0 1 0 13 0 6.5 6.5 0 0 0-13 0Zm10.28-1.72-4.5 4.5a.75.75 0 0 1-1.06 0l-2-2a.751.751 0 0 1 .018-1.042.751.751 0 0 1 1.042-.018l1.47 1.47 3.97-3.97a.751.751 0 0 1 1.042.018.751.751 0 0 1 .018 1.042Z`,
	Alert:       `M6.457 1.047c.659-1.234 2.427-1.234 3.086 0l6.082 11.378A1.75 1.75 0 0 1 14.082 15H1.918a1.75 1.75 0 0 1-1.543-2.575Zm1.763.707a.25.25 0 0 0-.44 0L1.698 13.132a.25.25 0 0 0 .22.368h12.164a.25.25 0 0 0 .22-.368Zm.53 3.996v2.5a.75.75 0 0 1-1.5 0v-2.5a.75.75 0 0 1 1.5 0ZM9 11a1 1 0 1 1-2 0 1 1 0 0 1 2 0Z`,
	X:           `M3.72 3.72a.75.75 0 0 1 1.06 0L8 6.94l3.22-3.22a.749.749 0 0 1 1.275.326.749.749 0 0 1-.215.734L9.06 8l3.22 3.22a.749.749 0 0 1-.326 1.275.749.749 0 0 1-.734-.215L8 9.06l-3.22 3.22a.751.751 0 0 1-1.042-.018.751.751 0 0 1-.018-1.042L6.94 8 3.72 4.78a.75.75 0 0 1 0-1.06Z`,
}

// Icon is a decorative inline SVG.
type Icon struct {
	Name  string
	Size  int      // pixels; zero means 16
	Attrs []string // pass-through attributes for the <svg>
}

// Lookup returns the icon registered under name.
func Lookup(name string) (Icon, bool) {
	if _, ok := paths[name]; !ok {
		return Icon{}, false
	}
	return Icon{Name: name}, true
}

// Names lists the available icons.
func Names() []string {
	out := make([]string, 0, len(paths))
	for n := range paths {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Render writes the SVG. An unknown name renders nothing.
func (i Icon) Render(b *element.Builder) (x any) {
	d, ok := paths[i.Name]
	if !ok {
		return
	}
	size := i.Size
	if size <= 0 {
		size = 16
	}
	px := strconv.Itoa(size)

	b.Svg(attrs.Merge(i.Attrs,
		"class", "octicon octicon-"+i.Name,
		"viewBox", "0 0 16 16",
		"width", px,
		"height", px,
		"fill", "currentColor",
		"aria-hidden", "true",
		"focusable", "false",
	)...).R(
		b.Ele("path", "d", d).R(),
	)
	return
}
