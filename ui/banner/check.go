package banner

import (
	"errors"
	"strings"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
	"golang.org/x/net/html"
)

// CheckTitle verifies that committed markup contains an element whose id is
// titleID.
func CheckTitle(markup, titleID string) error {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return serr.Wrap(err, "unable to parse banner markup")
	}
	return checkDoc(doc, titleID)
}

// Verify runs the title check for every banner against one page of markup.
// All failures are reported.
func Verify(markup string, banners ...*Banner) error {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return serr.Wrap(err, "unable to parse page markup")
	}
	var errs []error
	for _, bn := range banners {
		if err := checkDoc(doc, bn.TitleID()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func checkDoc(doc *html.Node, titleID string) error {
	if countID(doc, titleID) == 0 {
		return serr.Wrap(ErrMissingAccessibleTitle, "title_id", titleID)
	}
	return nil
}

// countID counts the elements under n whose id attribute equals id.
func countID(n *html.Node, id string) int {
	count := 0
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				count++
				break
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countID(c, id)
	}
	return count
}

// Renderer renders a banner on its own builder. With Checks set, the
// committed markup is verified before it is returned; Checks never changes
// the markup itself.
type Renderer struct {
	Checks bool
}

// Render renders bn to a string.
func (r Renderer) Render(bn *Banner) (string, error) {
	b := element.NewBuilder()
	if err := renderErr(b, bn); err != nil {
		return "", err
	}
	markup := b.String()

	if r.Checks {
		if err := CheckTitle(markup, bn.TitleID()); err != nil {
			return "", err
		}
	}
	return markup, nil
}

// Render renders bn without checks.
func Render(bn *Banner) (string, error) {
	return Renderer{}.Render(bn)
}
