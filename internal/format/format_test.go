package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uidl-generator/internal/chunk"
)

func TestHTML_Fragment(t *testing.T) {
	out, err := HTML(`<div class="page"><p>Hello   world</p><img src="a.png" alt=""><ul><li>a</li><li>b &amp; c</li></ul></div>`)
	require.NoError(t, err)

	expected := `<div class="page">
  <p>Hello world</p>
  <img src="a.png" alt>
  <ul>
    <li>a</li>
    <li>b &amp; c</li>
  </ul>
</div>
`
	assert.Equal(t, expected, out)
}

func TestHTML_Document(t *testing.T) {
	out, err := HTML(`<!DOCTYPE html><html lang="en"><head><title>Shell</title><meta charset="utf-8"></head><body><p>x</p></body></html>`)
	require.NoError(t, err)

	expected := `<!DOCTYPE html>
<html lang="en">
  <head>
    <title>Shell</title>
    <meta charset="utf-8">
  </head>
  <body>
    <p>x</p>
  </body>
</html>
`
	assert.Equal(t, expected, out)
}

func TestHTML_RawTextUntouched(t *testing.T) {
	out, err := HTML("<script>if (a < b) {\n  go()\n}</script><pre>  keep\n  this</pre>")
	require.NoError(t, err)

	assert.Equal(t, "<script>if (a < b) {\n  go()\n}</script>\n<pre>  keep\n  this</pre>\n", out)
}

func TestHTML_CommentsAndEmptyElements(t *testing.T) {
	out, err := HTML(`<!--  note --><section></section>`)
	require.NoError(t, err)

	assert.Equal(t, "<!-- note -->\n<section></section>\n", out)
}

func TestFormat(t *testing.T) {
	in := map[chunk.FileType]string{
		chunk.FileTypeHTML: "<p>Hi</p>",
		chunk.FileTypeCSS:  ".a {  \n  color: red;   \n}\n\n\n",
		"txt":              "  as is  ",
	}

	out, err := Format(in)
	require.NoError(t, err)

	assert.Equal(t, "<p>Hi</p>\n", out[chunk.FileTypeHTML])
	assert.Equal(t, ".a {\n  color: red;\n}\n", out[chunk.FileTypeCSS])
	assert.Equal(t, "  as is  ", out["txt"])

	// Input is left alone.
	assert.Equal(t, "<p>Hi</p>", in[chunk.FileTypeHTML])
}

func TestFormat_EmptyCSS(t *testing.T) {
	out, err := Format(map[chunk.FileType]string{chunk.FileTypeCSS: "  \n"})
	require.NoError(t, err)
	assert.Equal(t, "", out[chunk.FileTypeCSS])
}
