package postprocess

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uidl-generator/internal/chunk"
)

func upper(files Files) (Files, error) {
	out := Files{}
	for k, v := range files {
		out[k] = strings.ToUpper(v)
	}

	return out, nil
}

func suffix(s string) Processor {
	return func(files Files) (Files, error) {
		out := Files{}
		for k, v := range files {
			out[k] = v + s
		}

		return out, nil
	}
}

func TestChain_Order(t *testing.T) {
	chain := Chain{suffix("a"), upper, suffix("b")}

	out, err := chain.Apply(Files{chunk.FileTypeHTML: "x", chunk.FileTypeCSS: "y"})
	require.NoError(t, err)

	assert.Equal(t, "XAb", out[chunk.FileTypeHTML])
	assert.Equal(t, "YAb", out[chunk.FileTypeCSS])
}

func TestChain_ErrorPropagatesUnchanged(t *testing.T) {
	boom := errors.New("boom")
	called := false

	chain := Chain{
		func(Files) (Files, error) { return nil, boom },
		func(f Files) (Files, error) {
			called = true

			return f, nil
		},
	}

	_, err := chain.Apply(Files{chunk.FileTypeHTML: "x"})
	assert.Same(t, boom, err)
	assert.False(t, called)
}

func TestChain_Empty(t *testing.T) {
	in := Files{chunk.FileTypeHTML: "x"}

	out, err := Chain(nil).Apply(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPrettier(t *testing.T) {
	out, err := Prettier(nil)(Files{chunk.FileTypeHTML: "<div><p>Hi</p></div>"})
	require.NoError(t, err)

	assert.Equal(t, "<div>\n  <p>Hi</p>\n</div>\n", out[chunk.FileTypeHTML])
}

func TestSanitize(t *testing.T) {
	in := Files{
		chunk.FileTypeHTML: `<p onclick="steal()">Hi</p><script>alert(1)</script>`,
		chunk.FileTypeCSS:  ".a{}",
	}

	out, err := Sanitize(nil)(in)
	require.NoError(t, err)

	assert.Equal(t, "<p>Hi</p>", out[chunk.FileTypeHTML])
	assert.Equal(t, ".a{}", out[chunk.FileTypeCSS])
	assert.Contains(t, in[chunk.FileTypeHTML], "script", "input map is not modified")

	out, err = Sanitize(nil)(Files{chunk.FileTypeCSS: ".a{}"})
	require.NoError(t, err)
	assert.NotContains(t, out, chunk.FileTypeHTML)
}

func TestSanitize_PagePolicy(t *testing.T) {
	in := Files{chunk.FileTypeHTML: `<title>Home</title><meta name="description" content="home page"/>` +
		`<meta http-equiv="refresh" content="0"/><p onclick="steal()">Hi</p>`}

	out, err := Sanitize(PagePolicy())(in)
	require.NoError(t, err)

	html := out[chunk.FileTypeHTML]
	assert.Contains(t, html, "<title>Home</title>")
	assert.Contains(t, html, `name="description"`)
	assert.NotContains(t, html, "http-equiv")
	assert.NotContains(t, html, "onclick")
	assert.Contains(t, html, "<p>Hi</p>")
}

func TestBanner_ClosingSequences(t *testing.T) {
	out, err := Banner("a --> <b>x</b> */ y")(Files{
		chunk.FileTypeHTML: "<p></p>",
		chunk.FileTypeCSS:  ".a{}",
	})
	require.NoError(t, err)

	assert.Equal(t, "<!-- a -- > <b>x</b> */ y -->\n<p></p>", out[chunk.FileTypeHTML])
	assert.Equal(t, "/* a --> <b>x</b> * / y */\n.a{}", out[chunk.FileTypeCSS])
}

func TestBanner(t *testing.T) {
	out, err := Banner("generated")(Files{
		chunk.FileTypeHTML: "<p></p>",
		chunk.FileTypeCSS:  ".a{}",
		"md":               "# hi",
	})
	require.NoError(t, err)

	assert.Equal(t, "<!-- generated -->\n<p></p>", out[chunk.FileTypeHTML])
	assert.Equal(t, "/* generated */\n.a{}", out[chunk.FileTypeCSS])
	assert.Equal(t, "# hi", out["md"])
}
