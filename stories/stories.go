// Package stories loads the YAML fixtures the gallery and the CLI render.
// A story is a named page of banners.
package stories

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFiles embed.FS

const (
	dismissPost     = "post"
	dismissJSPrefix = "js:"
)

// Story is a page of banners.
type Story struct {
	Name    string       `yaml:"name" validate:"required,story_name"`
	Title   string       `yaml:"title" validate:"required"`
	Summary string       `yaml:"summary"`
	Banners []BannerSpec `yaml:"banners" validate:"required,min=1,dive"`

	Source string `yaml:"-"`
}

// BannerSpec describes one banner of a story.
type BannerSpec struct {
	Variant     string `yaml:"variant" validate:"omitempty,oneof=critical info success upsell warning"`
	Title       string `yaml:"title"`
	Heading     int    `yaml:"heading" validate:"omitempty,min=2,max=6"`
	NestedTitle bool   `yaml:"nested_title"`
	HideTitle   bool   `yaml:"hide_title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon" validate:"omitempty,octicon"`
	Primary     string `yaml:"primary"`
	Secondary   string `yaml:"secondary"`
	Dismiss     string `yaml:"dismiss" validate:"omitempty,dismiss"` // "post" or "js:<expression>"
	Body        string `yaml:"body"`
}

// Parse decodes and validates one story. source names the origin in errors.
func Parse(data []byte, source string) (Story, error) {
	var st Story
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Story{}, serr.Wrap(err, "unable to decode story", "source", source)
	}
	if err := validatorInstance().Struct(st); err != nil {
		return Story{}, serr.Wrap(err, "invalid story", "source", source)
	}
	st.Source = source
	return st, nil
}

// Builtin returns the stories shipped with the binary.
func Builtin() ([]Story, error) {
	return loadFS(builtinFiles, "builtin")
}

// LoadDir loads every .yaml and .yml file in dir.
func LoadDir(dir string) ([]Story, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, serr.Wrap(err, "stories directory not readable", "dir", dir)
	}
	return loadFS(os.DirFS(dir), ".")
}

func loadFS(fsys fs.FS, root string) ([]Story, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, serr.Wrap(err, "unable to list stories", "root", root)
	}

	var out []Story
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p := filepath.ToSlash(filepath.Join(root, e.Name()))
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, serr.Wrap(err, "unable to read story", "file", p)
		}
		st, err := Parse(data, p)
		if err != nil {
			return nil, err
		}
		logger.Debug("Story loaded", "name", st.Name, "source", p, "banners", len(st.Banners))
		out = append(out, st)
	}
	return out, nil
}

// Catalog indexes stories by name.
type Catalog struct {
	byName map[string]Story
}

// NewCatalog indexes stories. Names must be unique.
func NewCatalog(sts ...Story) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Story, len(sts))}
	for _, st := range sts {
		if prev, ok := c.byName[st.Name]; ok {
			return nil, serr.New("duplicate story name", "name", st.Name, "first", prev.Source, "second", st.Source)
		}
		c.byName[st.Name] = st
	}
	return c, nil
}

// Get returns the story called name.
func (c *Catalog) Get(name string) (Story, bool) {
	st, ok := c.byName[name]
	return st, ok
}

// All returns the stories sorted by name.
func (c *Catalog) All() []Story {
	out := make([]Story, 0, len(c.byName))
	for _, st := range c.byName {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Load builds the catalog from the built-in stories plus, when extraDir is
// not empty, the stories in extraDir.
func Load(extraDir string) (*Catalog, error) {
	sts, err := Builtin()
	if err != nil {
		return nil, err
	}
	if extraDir != "" {
		extra, err := LoadDir(extraDir)
		if err != nil {
			return nil, err
		}
		sts = append(sts, extra...)
	}
	return NewCatalog(sts...)
}
