// Package shared contains the pieces every gallery page is built from.
package shared

import (
	"github.com/rohanthewiz/element"

	"bannerkit/config"
	"bannerkit/stories"
	"bannerkit/views"
)

// Site is the per-request context every page needs.
type Site struct {
	Environment string
	Checks      bool
	Nav         []views.NavItem
}

// NewSite builds the site context with one nav entry per story.
func NewSite(cfg *config.Config, sts []stories.Story) Site {
	nav := make([]views.NavItem, 0, len(sts))
	for _, st := range sts {
		nav = append(nav, views.NavItem{Name: st.Name, Label: st.Title})
	}
	return Site{
		Environment: cfg.Environment,
		Checks:      cfg.Checks,
		Nav:         nav,
	}
}

// Page is embedded by the gallery pages.
//
// Example usage:
//
//	type Home struct {
//		shared.Page
//		Stories []stories.Story
//	}
type Page struct {
	Title string
	Name  string // nav entry to highlight
	Site  Site
}

// Layout wraps content in the gallery chrome and returns the document.
func (p Page) Layout(content ...element.Component) string {
	return views.BaseLayout(p.Title, "", views.PageWithNav{
		Title:       p.Title,
		Environment: p.Site.Environment,
		Checks:      p.Site.Checks,
		Nav:         p.Site.Nav,
		ActivePage:  p.Name,
		Content:     contents(append(content, p.Footer())),
	})
}

// Notice returns the page-level banner describing the check mode.
func (p Page) Notice() Notice {
	return Notice{Checks: p.Site.Checks}
}

func (p Page) Footer() Footer {
	return Footer{}
}

// contents renders several components as one.
type contents []element.Component

func (c contents) Render(b *element.Builder) (x any) {
	element.RenderComponents(b, c...)
	return
}
