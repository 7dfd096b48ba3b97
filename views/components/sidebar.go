package components

import (
	"html"

	"github.com/rohanthewiz/element"
)

// NavItem links a story page
type NavItem struct {
	Name  string
	Label string
}

// Sidebar lists the stories
type Sidebar struct {
	Items      []NavItem
	ActivePage string
}

func (s Sidebar) Render(b *element.Builder) (x any) {
	b.Aside("id", "sidebar", "class", "sidebar").R(
		b.Nav("class", "sidebar-nav").R(
			b.H3Class("sidebar-section-title").T("Stories"),
			s.renderItems(b),
		),
	)
	return
}

func (s Sidebar) activeClass(page string) string {
	if s.ActivePage == page {
		return "nav-link active"
	}
	return "nav-link"
}

func (s Sidebar) renderItems(b *element.Builder) (x any) {
	if len(s.Items) == 0 {
		b.P("class", "no-stories").T("No stories loaded")
		return
	}

	b.UlClass("nav-list").R(
		element.ForEach(s.Items, func(item NavItem) {
			b.Li().R(
				b.A("href", "/stories/"+item.Name,
					"class", s.activeClass(item.Name)).T(html.EscapeString(item.Label)),
			)
		}),
	)
	return
}
