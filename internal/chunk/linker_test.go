package chunk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestLink_Empty(t *testing.T) {
	out, err := Link(nil)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = Link([]*Chunk{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLink_SingleChunkVerbatim(t *testing.T) {
	out, err := Link([]*Chunk{{Name: "markup", FileType: FileTypeHTML, Content: "<div>Hi</div>\n"}})
	require.NoError(t, err)
	assert.Equal(t, "<div>Hi</div>\n", out)
}

func TestLink_Positions(t *testing.T) {
	chunks := []*Chunk{
		{Name: "body", Content: "body"},
		{Name: "footer", Content: "footer"},
		{Name: "imports", Content: "imports", Linker: Directive{Position: Prepend}},
		{Name: "helpers", Content: "helpers", Linker: Directive{Anchor: "body", Position: Before}},
		{Name: "init", Content: "init", Linker: Directive{Anchor: "imports", Position: After}},
		{Name: "config", Content: "config", Linker: Directive{Anchor: "imports", Position: After}},
	}

	out, err := Link(chunks)
	require.NoError(t, err)
	assert.Equal(t, "imports\ninit\nconfig\nhelpers\nbody\nfooter", out)
}

func TestLink_AnchorFromLaterChunkIsMissing(t *testing.T) {
	chunks := []*Chunk{
		{Name: "early", Content: "x", Linker: Directive{Anchor: "late", Position: After}},
		{Name: "late", Content: "y"},
	}

	_, err := Link(chunks)
	require.Error(t, err)

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "early", linkErr.Chunk)
	assert.Equal(t, "late", linkErr.Anchor)
	assert.Contains(t, err.Error(), `anchor "late" for after not found`)
}

func TestLink_BeforeWithoutAnchor(t *testing.T) {
	_, err := Link([]*Chunk{
		{Name: "a", Content: "a"},
		{Name: "b", Content: "b", Linker: Directive{Position: Before}},
	})

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "b", linkErr.Chunk)
}

func TestLink_RendersStructuredContent(t *testing.T) {
	div := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	div.AppendChild(&html.Node{Type: html.TextNode, Data: "Hi"})

	out, err := Link([]*Chunk{{Name: "markup", FileType: FileTypeHTML, Content: div}})
	require.NoError(t, err)
	assert.Equal(t, "<div>Hi</div>", out)

	css := Stylesheet{
		{Selector: ".a", Declarations: map[string]string{"color": "red", "display": "flex"}},
		{Selector: ".b", Declarations: map[string]string{"margin": "0"}},
	}

	out, err = Link([]*Chunk{{Name: "style", FileType: FileTypeCSS, Content: css}})
	require.NoError(t, err)
	assert.Equal(t, ".a {\n  color: red;\n  display: flex;\n}\n.b {\n  margin: 0;\n}", out)
}

func TestLink_DocumentNodeRendersChildrenOnly(t *testing.T) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br})
	root.AppendChild(&html.Node{Type: html.TextNode, Data: "a & b"})

	out, err := Link([]*Chunk{{Name: "markup", Content: root}})
	require.NoError(t, err)
	assert.Equal(t, "<br/>a &amp; b", out)
}

func TestLink_UnsupportedContent(t *testing.T) {
	_, err := Link([]*Chunk{{Name: "weird", FileType: FileTypeJS, Content: 42}})
	require.Error(t, err)

	var linkErr *LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.NotNil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "cannot render js content of type int")
}

func TestGroupByFileType(t *testing.T) {
	chunks := []*Chunk{
		{Name: "style", FileType: FileTypeCSS},
		{Name: "markup", FileType: FileTypeHTML},
		{Name: "extra-style", FileType: FileTypeCSS},
	}

	groups := GroupByFileType(chunks)
	require.Len(t, groups, 2)
	assert.Equal(t, FileTypeCSS, groups[0].FileType)
	assert.Equal(t, []*Chunk{chunks[0], chunks[2]}, groups[0].Chunks)
	assert.Equal(t, FileTypeHTML, groups[1].FileType)
	assert.Empty(t, GroupByFileType(nil))
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "append", Append.String())
	assert.Equal(t, "before", Before.String())
	assert.Equal(t, "Position(9)", Position(9).String())
}
