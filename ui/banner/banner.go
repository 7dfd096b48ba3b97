package banner

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"

	"bannerkit/ui/button"
	"bannerkit/ui/internal/attrs"
	"bannerkit/ui/octicons"
)

// Props configures a banner.
type Props struct {
	Variant Variant

	// Title renders as an h2 bound to the banner's title id. Leave it nil
	// when the title is supplied through a Title sub-component instead.
	Title       element.Component
	Description element.Component

	// Icon replaces the variant's default icon.
	Icon element.Component

	PrimaryAction   element.Component
	SecondaryAction element.Component

	// OnDismiss makes the banner dismissible, unless it is Critical.
	OnDismiss Handler

	// HideTitle keeps the title for assistive technology but hides it visually.
	HideTitle bool

	// Attrs are passed through to the <section> container. An "id" here is
	// how callers address the root element.
	Attrs []string
}

// Banner is a mounted banner.
type Banner struct {
	props    Props
	scope    *Scope
	children []element.Component
}

// New mounts a banner: it generates the title id once and publishes it
// through the banner's Scope.
func New(p Props, opts ...Option) *Banner {
	cfg := mountConfig{newID: newTitleID}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Banner{
		props: p,
		scope: &Scope{titleID: cfg.newID()},
	}
}

// Scope returns the value shared with sub-components.
func (bn *Banner) Scope() *Scope { return bn.scope }

// TitleID returns the identifier bound to aria-labelledby.
func (bn *Banner) TitleID() string {
	if bn == nil {
		return ""
	}
	return bn.scope.TitleID()
}

// Props returns the banner's props.
func (bn *Banner) Props() Props { return bn.props }

// Append adds nested content rendered after the title and description.
func (bn *Banner) Append(children ...element.Component) *Banner {
	bn.children = append(bn.children, children...)
	return bn
}

// WithActions sets the primary and secondary actions. Either may be nil.
func (bn *Banner) WithActions(primary, secondary element.Component) *Banner {
	bn.props.PrimaryAction = primary
	bn.props.SecondaryAction = secondary
	return bn
}

// Title creates a Title sub-component bound to this banner.
func (bn *Banner) Title(level HeadingLevel, content element.Component, attrPairs ...string) Title {
	return bn.scope.Title(level, content, attrPairs...)
}

// Description creates a Description sub-component bound to this banner.
func (bn *Banner) Description(content element.Component, attrPairs ...string) Description {
	return bn.scope.Description(content, attrPairs...)
}

// Actions creates an Actions region bound to this banner.
func (bn *Banner) Actions(primary, secondary element.Component, attrPairs ...string) Actions {
	return bn.scope.Actions(primary, secondary, attrPairs...)
}

// PrimaryAction creates a PrimaryAction bound to this banner.
func (bn *Banner) PrimaryAction(bt button.Button) PrimaryAction {
	return bn.scope.PrimaryAction(bt)
}

// SecondaryAction creates a SecondaryAction bound to this banner.
func (bn *Banner) SecondaryAction(bt button.Button) SecondaryAction {
	return bn.scope.SecondaryAction(bt)
}

// Render implements element.Component. The first sub-component failure is
// returned; markup already written for the banner is left in the builder.
func (bn *Banner) Render(b *element.Builder) (x any) {
	if bn == nil || bn.scope == nil {
		return serr.Wrap(ErrContextMisuse, "component", "Banner", "reason", "banner was not created with New")
	}
	p := bn.props
	app := Resolve(p.Variant)
	dismissible := Dismissible(p.Variant, p.OnDismiss)

	owned := []string{
		"class", "Banner",
		"aria-labelledby", bn.scope.titleID,
		"data-variant", app.Variant.String(),
		"tabindex", "-1",
	}
	if dismissible {
		owned = append(owned, "data-dismissible", "")
	}
	if p.HideTitle {
		owned = append(owned, "data-title-hidden", "")
	}

	var err error
	keep := func(e error) {
		if err == nil {
			err = e
		}
	}

	b.Section(attrs.Merge(p.Attrs, owned...)...).R(
		b.DivClass("BannerIcon").R(
			b.Wrap(func() {
				if p.Icon != nil {
					keep(renderErr(b, p.Icon))
					return
				}
				octicons.Icon{Name: app.Icon}.Render(b)
			}),
		),
		b.DivClass("BannerContainer").R(
			b.DivClass("BannerContent").R(
				b.Wrap(func() {
					if p.Title != nil {
						t := bn.scope.Title(H2, p.Title)
						t.hidden = p.HideTitle
						keep(renderErr(b, t))
					}
				}),
				b.Wrap(func() {
					if p.Description != nil {
						keep(renderErr(b, bn.scope.Description(p.Description)))
					}
				}),
				element.ForEach(bn.children, func(c element.Component) {
					keep(bn.renderChild(b, c))
				}),
			),
			b.Wrap(func() {
				if HasActions(p.PrimaryAction, p.SecondaryAction) {
					keep(renderErr(b, bn.scope.Actions(p.PrimaryAction, p.SecondaryAction)))
				}
			}),
		),
		b.Wrap(func() {
			if dismissible {
				dismissControl(p.OnDismiss).Render(b)
			}
		}),
	)

	if err != nil {
		return err
	}
	return
}

// renderChild renders nested content, refusing sub-components that were
// created from another banner's scope. A nested Title follows HideTitle.
func (bn *Banner) renderChild(b *element.Builder, c element.Component) error {
	if err := checkScope(bn.scope, c); err != nil {
		return err
	}
	if t, ok := c.(Title); ok && bn.props.HideTitle {
		t.hidden = true
		c = t
	}
	return renderErr(b, c)
}
