package banner

import (
	"strings"

	"github.com/rohanthewiz/serr"

	"bannerkit/ui/octicons"
	"bannerkit/ui/theme"
)

// Variant is the semantic category of a banner. The zero value is Info.
type Variant int

const (
	Info Variant = iota
	Critical
	Success
	Upsell
	Warning
)

var variantNames = [...]string{
	Info:     "info",
	Critical: "critical",
	Success:  "success",
	Upsell:   "upsell",
	Warning:  "warning",
}

// Variants lists every variant in declaration order.
func Variants() []Variant {
	return []Variant{Info, Critical, Success, Upsell, Warning}
}

func (v Variant) valid() bool {
	return v >= Info && v <= Warning
}

func (v Variant) String() string {
	if !v.valid() {
		return variantNames[Info]
	}
	return variantNames[v]
}

// ParseVariant converts a variant name. Names are case-insensitive.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return Info, nil
	}
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return Info, serr.New("unknown banner variant", "variant", s)
}

// Appearance is what a variant resolves to.
type Appearance struct {
	Variant  Variant
	Icon     string // default octicon, used when no Icon prop is given
	ThemeKey string // colour family in the theme
}

// Background, Border and IconColor name the theme tokens for the variant.
func (a Appearance) Background() string { return a.ThemeKey + "." + theme.RoleSubtle }
func (a Appearance) Border() string     { return a.ThemeKey + "." + theme.RoleMuted }
func (a Appearance) IconColor() string  { return a.ThemeKey + "." + theme.RoleFg }

var appearances = [...]Appearance{
	Info:     {Variant: Info, Icon: octicons.Info, ThemeKey: "accent"},
	Critical: {Variant: Critical, Icon: octicons.Stop, ThemeKey: "danger"},
	Success:  {Variant: Success, Icon: octicons.CheckCircle, ThemeKey: "success"},
	Upsell:   {Variant: Upsell, Icon: octicons.Info, ThemeKey: "done"},
	Warning:  {Variant: Warning, Icon: octicons.Alert, ThemeKey: "attention"},
}

// Resolve maps a variant to its default icon and theme key.
// Values outside the enum resolve as Info.
func Resolve(v Variant) Appearance {
	if !v.valid() {
		v = Info
	}
	return appearances[v]
}
