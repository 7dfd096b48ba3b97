package stories

import (
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"

	"bannerkit/ui/banner"
	"bannerkit/ui/button"
	"bannerkit/ui/octicons"
)

// Build mounts the story's banners. Banners with "dismiss: post" post to
// dismissURL.
func (st Story) Build(dismissURL string, opts ...banner.Option) ([]*banner.Banner, error) {
	out := make([]*banner.Banner, 0, len(st.Banners))
	for i, spec := range st.Banners {
		bn, err := spec.mount(st.Name+"-"+strconv.Itoa(i+1), dismissURL, opts...)
		if err != nil {
			return nil, serr.Wrap(err, "story", st.Name, "banner", strconv.Itoa(i+1))
		}
		out = append(out, bn)
	}
	return out, nil
}

func (spec BannerSpec) mount(id, dismissURL string, opts ...banner.Option) (*banner.Banner, error) {
	v, err := banner.ParseVariant(spec.Variant)
	if err != nil {
		return nil, err
	}

	props := banner.Props{
		Variant:   v,
		HideTitle: spec.HideTitle,
		Attrs:     []string{"id", id},
	}
	if spec.Title != "" && !spec.NestedTitle {
		props.Title = banner.Text(spec.Title)
	}
	if spec.Description != "" {
		props.Description = banner.Text(spec.Description)
	}
	if spec.Icon != "" {
		props.Icon = octicons.Icon{Name: spec.Icon}
	}
	switch {
	case spec.Dismiss == dismissPost:
		props.OnDismiss = banner.Post(dismissURL + "?id=" + id)
	case strings.HasPrefix(spec.Dismiss, dismissJSPrefix):
		props.OnDismiss = banner.JS(strings.TrimPrefix(spec.Dismiss, dismissJSPrefix))
	}

	bn := banner.New(props, opts...)

	if spec.Title != "" && spec.NestedTitle {
		bn.Append(bn.Title(banner.HeadingLevel(spec.Heading), banner.Text(spec.Title)))
	}
	if spec.Body != "" {
		bn.Append(paragraph(spec.Body))
	}

	var primary, secondary element.Component
	if spec.Primary != "" {
		primary = bn.PrimaryAction(button.Button{Content: banner.Text(spec.Primary)})
	}
	if spec.Secondary != "" {
		secondary = bn.SecondaryAction(button.Button{Content: banner.Text(spec.Secondary)})
	}
	bn.WithActions(primary, secondary)

	return bn, nil
}

type paragraph string

func (p paragraph) Render(b *element.Builder) (x any) {
	b.PClass("BannerBody").R(
		banner.Text(p).Render(b),
	)
	return
}
