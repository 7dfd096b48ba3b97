package button

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/element"
)

type text string

func (t text) Render(b *element.Builder) (x any) {
	b.T(string(t))
	return
}

func render(c element.Component) string {
	b := element.NewBuilder()
	c.Render(b)
	return b.String()
}

func TestButtonDefaults(t *testing.T) {
	html := render(Button{Content: text("Save")})

	for _, want := range []string{
		`type="button"`,
		`class="Button"`,
		`data-variant="default"`,
		`data-size="medium"`,
		"Save",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Button should contain %s, got %s", want, html)
		}
	}
	if strings.Contains(html, "Button-leadingVisual") {
		t.Error("Button without LeadingVisual should not render an icon slot")
	}
}

func TestButtonVariantAndIcon(t *testing.T) {
	html := render(Button{
		Variant:       Danger,
		Size:          Small,
		LeadingVisual: "alert",
		Content:       text("Delete"),
		Attrs:         []string{"class", "wide", "onclick", "go()"},
	})

	for _, want := range []string{
		`data-variant="danger"`,
		`data-size="small"`,
		`class="wide Button"`,
		`onclick="go()"`,
		"octicon-alert",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Button should contain %s, got %s", want, html)
		}
	}
}

func TestButtonOwnsVariantAttribute(t *testing.T) {
	html := render(Button{Variant: Primary, Attrs: []string{"data-variant", "danger"}})
	if !strings.Contains(html, `data-variant="primary"`) || strings.Contains(html, `data-variant="danger"`) {
		t.Errorf("Variant field should win over pass-through data-variant, got %s", html)
	}
}

func TestUnknownVariantFallsBack(t *testing.T) {
	html := render(Button{Variant: "sparkly", Size: "huge"})
	if !strings.Contains(html, `data-variant="default"`) || !strings.Contains(html, `data-size="medium"`) {
		t.Errorf("unknown variant/size should fall back to defaults, got %s", html)
	}
}

func TestIconButton(t *testing.T) {
	ib := IconButton{Icon: "x", Label: "Close", Variant: Invisible}
	if err := ib.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	html := render(ib)
	for _, want := range []string{`aria-label="Close"`, `data-variant="invisible"`, "octicon-x"} {
		if !strings.Contains(html, want) {
			t.Errorf("IconButton should contain %s, got %s", want, html)
		}
	}

	if err := (IconButton{Icon: "x"}).Validate(); err == nil {
		t.Error("IconButton without label should fail validation")
	}
}
