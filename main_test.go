package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"BANNERKIT_ENV", "BANNERKIT_CHECKS", "BANNERKIT_ADDRESS", "BANNERKIT_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestStoriesCommand(t *testing.T) {
	t.Setenv("BANNERKIT_STORIES_DIR", "")
	os.Unsetenv("BANNERKIT_STORIES_DIR")

	out, err := runCLI(t, "stories")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	for _, name := range []string{"actions", "titles", "variants"} {
		assert.Contains(t, out, name)
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("BANNERKIT_STORIES_DIR", "")
	os.Unsetenv("BANNERKIT_STORIES_DIR")

	out, err := runCLI(t, "render", "actions")
	require.NoError(t, err)
	assert.Contains(t, out, "<section")
	assert.Contains(t, out, `data-hidden-at="md"`)
	assert.Contains(t, out, `data-hidden-at="sm"`)

	_, err = runCLI(t, "render", "nope")
	assert.Error(t, err)

	_, err = runCLI(t, "render")
	assert.Error(t, err, "render needs a story name")
}

func TestCheckCommandBuiltins(t *testing.T) {
	t.Setenv("BANNERKIT_STORIES_DIR", "")
	os.Unsetenv("BANNERKIT_STORIES_DIR")

	out, err := runCLI(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok    variants")
	assert.NotContains(t, out, "FAIL")
}

func TestCheckCommandReportsMissingTitle(t *testing.T) {
	dir := t.TempDir()
	story := []byte("name: untitled\ntitle: Untitled\nbanners:\n  - variant: warning\n    description: No title here.\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "untitled.yaml"), story, 0o600))
	t.Setenv("BANNERKIT_STORIES_DIR", dir)

	out, err := runCLI(t, "check")
	require.Error(t, err)
	assert.Contains(t, out, "FAIL  untitled")
	assert.Contains(t, out, "ok    titles")

	// render skips the check on request
	out, err = runCLI(t, "render", "--no-checks", "untitled")
	require.NoError(t, err)
	assert.Contains(t, out, `data-variant="warning"`)
}

func TestInvalidConfigFailsEarly(t *testing.T) {
	cmd := newRootCmd()
	t.Setenv("BANNERKIT_ENV", "staging")
	cmd.SetArgs([]string{"--config-dir", t.TempDir(), "stories"})
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
