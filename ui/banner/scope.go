package banner

import (
	"strconv"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"

	"bannerkit/ui/internal/attrs"
)

// Scope is the value a mounted banner shares with its sub-components.
// It carries only the title id and never changes after New.
type Scope struct {
	titleID string
}

// TitleID is the identifier the title element must carry.
func (s *Scope) TitleID() string {
	if s == nil {
		return ""
	}
	return s.titleID
}

// scoped is implemented by every sub-component bound to a Scope.
type scoped interface {
	bannerScope() *Scope
}

func misuse(component string) error {
	return serr.Wrap(ErrContextMisuse, "component", component)
}

// checkScope rejects c when it is bound to a scope other than s.
func checkScope(s *Scope, c element.Component) error {
	if sc, ok := c.(scoped); ok && sc.bannerScope() != nil && sc.bannerScope() != s {
		return serr.Wrap(ErrContextMisuse, "reason", "sub-component belongs to another banner", "title_id", s.TitleID())
	}
	return nil
}

// renderErr renders c and reports the error, if any, that it returned.
func renderErr(b *element.Builder, c element.Component) error {
	if c == nil {
		return nil
	}
	if err, ok := c.Render(b).(error); ok {
		return err
	}
	return nil
}

// HeadingLevel is the heading element used for a title.
type HeadingLevel int

const (
	H2 HeadingLevel = iota + 2
	H3
	H4
	H5
	H6
)

func (l HeadingLevel) tag() string {
	if l < H2 || l > H6 {
		l = H2
	}
	return "h" + strconv.Itoa(int(l))
}

// Title renders the banner's accessible name. It carries the scope's title id.
type Title struct {
	scope   *Scope
	level   HeadingLevel
	content element.Component
	attrs   []string
	hidden  bool
}

// NewTitle creates a Title bound to s.
func NewTitle(s *Scope, level HeadingLevel, content element.Component, attrPairs ...string) (Title, error) {
	if s == nil {
		return Title{}, misuse("Title")
	}
	return Title{scope: s, level: level, content: content, attrs: attrPairs}, nil
}

// Title creates a Title bound to s. A nil scope yields a Title that fails to render.
func (s *Scope) Title(level HeadingLevel, content element.Component, attrPairs ...string) Title {
	t, _ := NewTitle(s, level, content, attrPairs...)
	return t
}

func (t Title) bannerScope() *Scope { return t.scope }

// Render implements element.Component. An unbound Title writes nothing and
// returns ErrContextMisuse.
func (t Title) Render(b *element.Builder) (x any) {
	if t.scope == nil {
		return misuse("Title")
	}
	class := "BannerTitle"
	if t.hidden {
		class += " sr-only"
	}
	var err error
	b.Ele(t.level.tag(), attrs.Merge(t.attrs,
		"id", t.scope.titleID,
		"class", class,
	)...).R(
		b.Wrap(func() {
			err = renderErr(b, t.content)
		}),
	)
	if err != nil {
		return err
	}
	return
}

// Description renders supporting text below the title.
type Description struct {
	scope   *Scope
	content element.Component
	attrs   []string
}

// NewDescription creates a Description bound to s.
func NewDescription(s *Scope, content element.Component, attrPairs ...string) (Description, error) {
	if s == nil {
		return Description{}, misuse("Description")
	}
	return Description{scope: s, content: content, attrs: attrPairs}, nil
}

// Description creates a Description bound to s.
func (s *Scope) Description(content element.Component, attrPairs ...string) Description {
	d, _ := NewDescription(s, content, attrPairs...)
	return d
}

func (d Description) bannerScope() *Scope { return d.scope }

// Render implements element.Component
func (d Description) Render(b *element.Builder) (x any) {
	if d.scope == nil {
		return misuse("Description")
	}
	var err error
	b.Div(attrs.Merge(d.attrs, "class", "BannerDescription")...).R(
		b.Wrap(func() {
			err = renderErr(b, d.content)
		}),
	)
	if err != nil {
		return err
	}
	return
}
