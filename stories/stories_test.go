package stories

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bannerkit/ui/banner"
)

func TestBuiltinStoriesLoad(t *testing.T) {
	sts, err := Builtin()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, st := range sts {
		names[st.Name] = true
		assert.NotEmpty(t, st.Banners, st.Name)
	}
	for _, want := range []string{"variants", "actions", "titles"} {
		assert.True(t, names[want], "builtin story %s should exist", want)
	}
}

func TestBuiltinStoriesPassChecks(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	for _, st := range cat.All() {
		banners, err := st.Build("/banners/dismiss")
		require.NoError(t, err, st.Name)
		for _, bn := range banners {
			_, err := banner.Renderer{Checks: true}.Render(bn)
			assert.NoError(t, err, "story %s", st.Name)
		}
	}
}

func TestVariantsStoryCoversEveryVariant(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	st, ok := cat.Get("variants")
	require.True(t, ok)

	banners, err := st.Build("/dismiss")
	require.NoError(t, err)
	seen := map[banner.Variant]bool{}
	for _, bn := range banners {
		seen[bn.Props().Variant] = true
	}
	assert.Len(t, seen, len(banner.Variants()))
}

func TestBuildWiresDismissAndActions(t *testing.T) {
	st, err := Parse([]byte(`
name: wiring
title: Wiring
banners:
  - variant: warning
    title: Hello
    primary: Fix
    secondary: Later
    dismiss: post
  - title: Scripted
    dismiss: "js:hide()"
`), "inline")
	require.NoError(t, err)

	banners, err := st.Build("/banners/dismiss")
	require.NoError(t, err)
	require.Len(t, banners, 2)

	first, err := banner.Render(banners[0])
	require.NoError(t, err)
	assert.Contains(t, first, `hx-post="/banners/dismiss?id=wiring-1"`)
	assert.Contains(t, first, `id="wiring-1"`)
	assert.Equal(t, 2, strings.Count(first, "BannerPrimaryAction"))
	assert.Equal(t, 2, strings.Count(first, "BannerSecondaryAction"))

	second, err := banner.Render(banners[1])
	require.NoError(t, err)
	assert.Contains(t, second, `onclick="hide()"`)
	assert.Equal(t, banner.Info, banners[1].Props().Variant)
}

func TestNestedTitleUsesHeadingLevel(t *testing.T) {
	st, err := Parse([]byte(`
name: nested
title: Nested
banners:
  - title: Deep
    heading: 5
    nested_title: true
`), "inline")
	require.NoError(t, err)

	banners, err := st.Build("/d")
	require.NoError(t, err)
	out, err := banner.Renderer{Checks: true}.Render(banners[0])
	require.NoError(t, err)
	assert.Contains(t, out, "<h5")
	assert.Nil(t, banners[0].Props().Title)
}

func TestLoadDirMissingTitleFailsChecks(t *testing.T) {
	sts, err := LoadDir("testdata/absent")
	require.Error(t, err, "a missing directory is an error")
	assert.Nil(t, sts)

	st, err := parseFile(t, "testdata/missing_title.yaml")
	require.NoError(t, err)
	banners, err := st.Build("/d")
	require.NoError(t, err)

	_, err = banner.Renderer{Checks: true}.Render(banners[0])
	assert.True(t, errors.Is(err, banner.ErrMissingAccessibleTitle))
}

func TestInvalidStoriesRejected(t *testing.T) {
	_, err := parseFile(t, "testdata/bad_variant.yaml")
	assert.Error(t, err)

	cases := map[string]string{
		"no banners":  "name: empty\ntitle: Empty\n",
		"bad name":    "name: Bad Name\ntitle: x\nbanners:\n  - title: t\n",
		"bad icon":    "name: icon\ntitle: x\nbanners:\n  - title: t\n    icon: rocket\n",
		"bad heading": "name: heading\ntitle: x\nbanners:\n  - title: t\n    heading: 1\n",
		"bad dismiss": "name: dismiss\ntitle: x\nbanners:\n  - title: t\n    dismiss: \"js:\"\n",
		"bad yaml":    "name: [\n",
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc), name)
		assert.Error(t, err, name)
	}
}

func TestLoadDirRejectsInvalidFiles(t *testing.T) {
	_, err := LoadDir("testdata")
	assert.Error(t, err, "testdata contains an invalid story")
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	a := Story{Name: "same", Source: "a.yaml"}
	b := Story{Name: "same", Source: "b.yaml"}
	_, err := NewCatalog(a, b)
	assert.Error(t, err)

	cat, err := NewCatalog(Story{Name: "b"}, Story{Name: "a"})
	require.NoError(t, err)
	all := cat.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name)
	_, ok := cat.Get("zzz")
	assert.False(t, ok)
}

func parseFile(t *testing.T, path string) (Story, error) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return Parse(data, path)
}
