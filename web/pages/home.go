// Package pages contains the gallery pages.
package pages

import (
	"html"

	"github.com/rohanthewiz/element"

	"bannerkit/stories"
	"bannerkit/web/pages/comps"
	"bannerkit/web/pages/shared"
)

// Home lists the stories.
type Home struct {
	shared.Page
	Stories []stories.Story
}

// NewHome builds the index page.
func NewHome(site shared.Site, sts []stories.Story) Home {
	return Home{
		Page:    shared.Page{Title: "Stories", Site: site},
		Stories: sts,
	}
}

func (h Home) Render() (out string) {
	return h.Layout(
		h.Notice(),
		comps.Heading{Title: "Banner stories", Summary: "Each story renders a set of banners with the same props the Go API takes."},
		storyList(h.Stories),
	)
}

type storyList []stories.Story

func (sl storyList) Render(b *element.Builder) (x any) {
	b.UlClass("story-list").R(
		element.ForEach(sl, func(st stories.Story) {
			b.Li().R(
				b.A("href", "/stories/"+st.Name).T(html.EscapeString(st.Title)),
				b.Wrap(func() {
					if st.Summary != "" {
						b.SpanClass("story-summary").T(html.EscapeString(st.Summary))
					}
				}),
			)
		}),
	)
	return
}
