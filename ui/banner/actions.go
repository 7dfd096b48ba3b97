package banner

import (
	"github.com/rohanthewiz/element"

	"bannerkit/ui/button"
	"bannerkit/ui/internal/attrs"
	"bannerkit/ui/theme"
)

// Slot identifies one of the two action positions.
type Slot int

const (
	SlotPrimary Slot = iota
	SlotSecondary
)

// Arrangement is one ordering of the actions, hidden on one side of the
// layout breakpoint.
type Arrangement struct {
	HiddenAt      string // "md": hidden at or above the breakpoint, "sm": hidden below it
	PrimaryAction string // data-primary-action value: leading or trailing
	Order         [2]Slot
}

// Layout is the responsive action strategy: both arrangements are always
// rendered and the stylesheet hides one of them by breakpoint, so crossing
// the breakpoint never changes the markup.
type Layout struct {
	Breakpoint   theme.Breakpoint
	Arrangements [2]Arrangement
}

// ActionLayout is the layout every banner uses. Narrow viewports show the
// secondary action first; wide viewports lead with the primary action.
var ActionLayout = Layout{
	Breakpoint: theme.BreakpointMD,
	Arrangements: [2]Arrangement{
		{HiddenAt: "md", PrimaryAction: "trailing", Order: [2]Slot{SlotSecondary, SlotPrimary}},
		{HiddenAt: "sm", PrimaryAction: "leading", Order: [2]Slot{SlotPrimary, SlotSecondary}},
	},
}

// HasActions reports whether an actions region is rendered.
func HasActions(primary, secondary element.Component) bool {
	return primary != nil || secondary != nil
}

// Actions is the actions region of a banner.
type Actions struct {
	scope     *Scope
	primary   element.Component
	secondary element.Component
	attrs     []string
}

// NewActions creates an Actions region bound to s.
func NewActions(s *Scope, primary, secondary element.Component, attrPairs ...string) (Actions, error) {
	if s == nil {
		return Actions{}, misuse("Actions")
	}
	return Actions{scope: s, primary: primary, secondary: secondary, attrs: attrPairs}, nil
}

// Actions creates an Actions region bound to s.
func (s *Scope) Actions(primary, secondary element.Component, attrPairs ...string) Actions {
	a, _ := NewActions(s, primary, secondary, attrPairs...)
	return a
}

func (a Actions) bannerScope() *Scope { return a.scope }

// Render implements element.Component. Nothing is written when neither
// action is present.
func (a Actions) Render(b *element.Builder) (x any) {
	if a.scope == nil {
		return misuse("Actions")
	}
	if !HasActions(a.primary, a.secondary) {
		return
	}
	slots := [2]element.Component{SlotPrimary: a.primary, SlotSecondary: a.secondary}
	for _, c := range slots {
		if err := checkScope(a.scope, c); err != nil {
			return err
		}
	}

	var err error
	keep := func(e error) {
		if err == nil {
			err = e
		}
	}
	b.Div(attrs.Merge(a.attrs, "class", "BannerActions")...).R(
		element.ForEach(ActionLayout.Arrangements[:], func(arr Arrangement) {
			b.Div("class", "BannerActionsContainer",
				"data-hidden-at", arr.HiddenAt,
				"data-primary-action", arr.PrimaryAction,
			).R(
				element.ForEach(arr.Order[:], func(slot Slot) {
					keep(renderErr(b, slots[slot]))
				}),
			)
		}),
	)
	if err != nil {
		return err
	}
	return
}

// PrimaryAction is the banner's main call to action. It always renders with
// the default button variant.
type PrimaryAction struct {
	scope  *Scope
	button button.Button
}

// NewPrimaryAction creates a PrimaryAction bound to s.
func NewPrimaryAction(s *Scope, bt button.Button) (PrimaryAction, error) {
	if s == nil {
		return PrimaryAction{}, misuse("PrimaryAction")
	}
	return PrimaryAction{scope: s, button: bt}, nil
}

// PrimaryAction creates a PrimaryAction bound to s.
func (s *Scope) PrimaryAction(bt button.Button) PrimaryAction {
	pa, _ := NewPrimaryAction(s, bt)
	return pa
}

func (pa PrimaryAction) bannerScope() *Scope { return pa.scope }

// Render implements element.Component
func (pa PrimaryAction) Render(b *element.Builder) (x any) {
	if pa.scope == nil {
		return misuse("PrimaryAction")
	}
	bt := pa.button
	bt.Variant = button.Default
	bt.Attrs = attrs.Merge(bt.Attrs, "class", "BannerPrimaryAction")
	return bt.Render(b)
}

// SecondaryAction is the banner's alternative action. It always renders with
// the invisible button variant.
type SecondaryAction struct {
	scope  *Scope
	button button.Button
}

// NewSecondaryAction creates a SecondaryAction bound to s.
func NewSecondaryAction(s *Scope, bt button.Button) (SecondaryAction, error) {
	if s == nil {
		return SecondaryAction{}, misuse("SecondaryAction")
	}
	return SecondaryAction{scope: s, button: bt}, nil
}

// SecondaryAction creates a SecondaryAction bound to s.
func (s *Scope) SecondaryAction(bt button.Button) SecondaryAction {
	sa, _ := NewSecondaryAction(s, bt)
	return sa
}

func (sa SecondaryAction) bannerScope() *Scope { return sa.scope }

// Render implements element.Component
func (sa SecondaryAction) Render(b *element.Builder) (x any) {
	if sa.scope == nil {
		return misuse("SecondaryAction")
	}
	bt := sa.button
	bt.Variant = button.Invisible
	bt.Attrs = attrs.Merge(bt.Attrs, "class", "BannerSecondaryAction")
	return bt.Render(b)
}
