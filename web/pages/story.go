package pages

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"

	"bannerkit/stories"
	"bannerkit/ui/banner"
	"bannerkit/web/pages/comps"
	"bannerkit/web/pages/shared"
)

// DismissPath receives the htmx post of dismissible story banners.
const DismissPath = "/banners/dismiss"

// StoryPage renders one story.
type StoryPage struct {
	shared.Page
	Story   stories.Story
	Banners []*banner.Banner
}

// NewStoryPage mounts the story's banners.
func NewStoryPage(site shared.Site, st stories.Story, opts ...banner.Option) (StoryPage, error) {
	banners, err := st.Build(DismissPath, opts...)
	if err != nil {
		return StoryPage{}, err
	}
	return StoryPage{
		Page:    shared.Page{Title: st.Title, Name: st.Name, Site: site},
		Story:   st,
		Banners: banners,
	}, nil
}

// Render returns the page markup. Banner render failures are returned after
// the page is complete. With checks on, every banner's title is verified
// against the finished page.
func (sp StoryPage) Render() (string, error) {
	list := &bannerList{banners: sp.Banners}
	out := sp.Layout(
		comps.Heading{Title: sp.Story.Title, Summary: sp.Story.Summary},
		list,
	)
	if list.err != nil {
		return out, serr.Wrap(list.err, "story", sp.Story.Name)
	}
	if sp.Site.Checks {
		if err := banner.Verify(out, sp.Banners...); err != nil {
			return out, serr.Wrap(err, "story", sp.Story.Name)
		}
	}
	return out, nil
}

type bannerList struct {
	banners []*banner.Banner
	err     error
}

func (bl *bannerList) Render(b *element.Builder) (x any) {
	b.DivClass("story-banners").R(
		element.ForEach(bl.banners, func(bn *banner.Banner) {
			b.DivClass("story-item").R(
				b.Wrap(func() {
					if err, ok := bn.Render(b).(error); ok && bl.err == nil {
						bl.err = err
					}
				}),
			)
		}),
	)
	return
}
