// Package button is the pressable-control family: Button and IconButton.
package button

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"

	"bannerkit/ui/internal/attrs"
	"bannerkit/ui/octicons"
)

// Variant selects the visual treatment of a button.
type Variant string

const (
	Default   Variant = "default"
	Primary   Variant = "primary"
	Danger    Variant = "danger"
	Invisible Variant = "invisible"
	Outline   Variant = "outline"
)

func (v Variant) orDefault() Variant {
	switch v {
	case Default, Primary, Danger, Invisible, Outline:
		return v
	}
	return Default
}

// Size of a button.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

func (s Size) orDefault() Size {
	switch s {
	case Small, Medium, Large:
		return s
	}
	return Medium
}

// Button is a text button with an optional leading icon.
type Button struct {
	Variant       Variant
	Size          Size
	LeadingVisual string // octicon name
	Content       element.Component
	Attrs         []string
}

// Render implements element.Component
func (bt Button) Render(b *element.Builder) (x any) {
	b.Button(attrs.Merge(bt.Attrs,
		"type", "button",
		"class", "Button",
		"data-variant", string(bt.Variant.orDefault()),
		"data-size", string(bt.Size.orDefault()),
	)...).R(
		b.Wrap(func() {
			if bt.LeadingVisual != "" {
				b.SpanClass("Button-leadingVisual").R(
					octicons.Icon{Name: bt.LeadingVisual}.Render(b),
				)
			}
		}),
		b.SpanClass("Button-label").R(
			b.Wrap(func() {
				if bt.Content != nil {
					bt.Content.Render(b)
				}
			}),
		),
	)
	return
}

// IconButton is an icon-only button. Label becomes its aria-label and is
// its only accessible name.
type IconButton struct {
	Icon    string
	Label   string
	Variant Variant
	Size    Size
	Attrs   []string
}

// Validate reports an IconButton without an accessible name.
func (ib IconButton) Validate() error {
	if ib.Label == "" {
		return serr.New("icon button requires a label", "icon", ib.Icon)
	}
	return nil
}

// Render implements element.Component
func (ib IconButton) Render(b *element.Builder) (x any) {
	b.Button(attrs.Merge(ib.Attrs,
		"type", "button",
		"class", "Button IconButton",
		"data-variant", string(ib.Variant.orDefault()),
		"data-size", string(ib.Size.orDefault()),
		"aria-label", ib.Label,
	)...).R(
		octicons.Icon{Name: ib.Icon}.Render(b),
	)
	return
}
