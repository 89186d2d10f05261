package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const component = `{
  "name": "HomePage",
  "node": {"type": "container", "style": {"padding": "4px"}, "children": [{"type": "text", "content": "Hi"}]}
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func TestComponentCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "home.json")
	require.NoError(t, os.WriteFile(src, []byte(component), 0o644))

	out := filepath.Join(dir, "out")
	_, err := execute(t, "component", src, "--out", out)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(out, "home-page.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `<span>Hi</span>`)

	css, err := os.ReadFile(filepath.Join(out, "home-page.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "padding: 4px;")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"name": "Bad", "node": {"type": "container", "content": "x", "children": [{"type": "text"}]}}`), 0o644))

	out, err := execute(t, "check", src, "--out", "")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: [Bad] node: [content_and_children]")
}

const site = `{
  "name": "site",
  "globals": {"title": "Site"},
  "pages": [
    {
      "name": "Home",
      "meta": {"title": "Home", "metas": [{"name": "description", "content": "home page"}]},
      "node": {"type": "text", "content": "Welcome"}
    }
  ]
}`

func TestProjectCommand_Sanitize(t *testing.T) {
	t.Cleanup(func() {
		sanitize = false
		outputDir = ""
	})

	dir := t.TempDir()
	src := filepath.Join(dir, "site.json")
	require.NoError(t, os.WriteFile(src, []byte(site), 0o644))

	out := filepath.Join(dir, "out")
	_, err := execute(t, "project", src, "--out", out, "--sanitize")
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(out, "home.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Home</title>")
	assert.Contains(t, string(html), `name="description"`)
	assert.Contains(t, string(html), "Welcome")
}
