// Package theme holds the semantic colour tokens and breakpoints that the
// ui components style themselves with.
//
// Tokens are addressed by "<family>.<role>" names such as "danger.subtle".
// Each resolves to a CSS custom property with a light-mode fallback, so a
// host page can re-theme by defining the properties.
package theme

import (
	"sort"
	"strconv"
)

// Roles of a colour family.
const (
	RoleSubtle = "subtle" // background
	RoleMuted  = "muted"  // border
	RoleFg     = "fg"     // foreground and icons
)

// Token is one resolved colour.
type Token struct {
	Name     string // e.g. danger.subtle
	Var      string // CSS custom property, e.g. --bgColor-danger-subtle
	Fallback string
}

// CSS renders the token as a var() expression with its fallback.
func (t Token) CSS() string {
	return "var(" + t.Var + ", " + t.Fallback + ")"
}

var tokens = map[string]Token{}

func init() {
	families := map[string][3]string{
		//             subtle     muted                       fg
		"accent":    {"#ddf4ff", "rgba(84, 174, 255, 0.4)", "#0969da"},
		"attention": {"#fff8c5", "rgba(212, 167, 44, 0.4)", "#9a6700"},
		"danger":    {"#ffebe9", "rgba(255, 129, 130, 0.4)", "#d1242f"},
		"done":      {"#fbefff", "rgba(194, 151, 255, 0.4)", "#8250df"},
		"success":   {"#dafbe1", "rgba(74, 194, 107, 0.4)", "#1a7f37"},
	}
	for fam, c := range families {
		register(fam, RoleSubtle, "--bgColor-"+fam+"-muted", c[0])
		register(fam, RoleMuted, "--borderColor-"+fam+"-muted", c[1])
		register(fam, RoleFg, "--fgColor-"+fam, c[2])
	}
	register("fg", "default", "--fgColor-default", "#1f2328")
	register("fg", "muted", "--fgColor-muted", "#59636e")
}

func register(family, role, cssVar, fallback string) {
	name := family + "." + role
	tokens[name] = Token{Name: name, Var: cssVar, Fallback: fallback}
}

// Lookup resolves a semantic token name.
func Lookup(name string) (Token, bool) {
	t, ok := tokens[name]
	return t, ok
}

// CSS resolves name to a var() expression. Unknown names yield "inherit"
// so a typo degrades to the surrounding colour instead of invalid CSS.
func CSS(name string) string {
	if t, ok := tokens[name]; ok {
		return t.CSS()
	}
	return "inherit"
}

// Names lists the registered token names in sorted order.
func Names() []string {
	out := make([]string, 0, len(tokens))
	for n := range tokens {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Breakpoint is a viewport width threshold in CSS pixels.
type Breakpoint struct {
	Name  string
	Width int
}

var (
	BreakpointSM = Breakpoint{Name: "sm", Width: 544}
	BreakpointMD = Breakpoint{Name: "md", Width: 768}
)

// MinWidth is the media query matching viewports at or above bp.
func (bp Breakpoint) MinWidth() string {
	return "@media (min-width: " + strconv.Itoa(bp.Width) + "px)"
}

// MaxWidth is the media query matching viewports below bp.
func (bp Breakpoint) MaxWidth() string {
	return "@media (max-width: " + strconv.FormatFloat(float64(bp.Width)-0.02, 'f', 2, 64) + "px)"
}
