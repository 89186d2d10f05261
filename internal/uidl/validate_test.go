package uidl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homePage = `{
  "name": "HomePage",
  "meta": {"fileName": "index"},
  "styleSetDefinitions": {"card": {"content": {"padding": "4px"}}},
  "node": {
    "type": "container",
    "attrs": {"id": "main"},
    "referencedStyles": [
      {"type": "component-referenced", "id": "card"},
      {"type": "project-referenced", "id": "primary"}
    ],
    "children": [
      {"type": "text", "content": "Hi"},
      {
        "type": "list",
        "repeat": {"source": "items", "node": {"type": "listItem", "content": "item"}}
      }
    ]
  }
}`

func TestDecodeAndParse(t *testing.T) {
	doc, err := Decode([]byte(homePage))
	require.NoError(t, err)

	c, err := ParseComponentJSON(doc)
	require.NoError(t, err)

	assert.Equal(t, "HomePage", c.Name)
	assert.Equal(t, "index", c.FileName())
	require.NotNil(t, c.Node)
	assert.Equal(t, "container", c.Node.Type)
	assert.Equal(t, "main", c.Node.Attrs["id"])
	require.Len(t, c.Node.Children, 2)
	assert.Equal(t, "Hi", c.Node.Children[0].Content)
	require.NotNil(t, c.Node.Children[1].Repeat)
	assert.Equal(t, "items", c.Node.Children[1].Repeat.Source)
	assert.Equal(t, "listItem", c.Node.Children[1].Repeat.Node.Type)
	assert.Len(t, c.Node.ReferencedStyles, 2)
}

func TestDecode_NotAnObject(t *testing.T) {
	_, err := Decode([]byte(`[1, 2]`))
	require.Error(t, err)

	_, err = Decode([]byte(`{"name": `))
	require.Error(t, err)
}

func TestFileName_FallsBackToName(t *testing.T) {
	c := &Component{Name: "AboutUs"}
	assert.Equal(t, "AboutUs", c.FileName())

	c.Meta = &Meta{}
	assert.Equal(t, "AboutUs", c.FileName())
}

func TestValidateComponentSchema(t *testing.T) {
	v := NewValidator()

	doc, err := Decode([]byte(homePage))
	require.NoError(t, err)

	res := v.ValidateComponentSchema(doc)
	assert.True(t, res.Valid, res.ErrorMsg)

	tests := []struct {
		name    string
		json    string
		wantMsg string
	}{
		{
			name:    "missing name",
			json:    `{"node": {"type": "container"}}`,
			wantMsg: `"name" must be a non-empty string`,
		},
		{
			name:    "missing node",
			json:    `{"name": "A"}`,
			wantMsg: `"node" must be an object`,
		},
		{
			name:    "child without type",
			json:    `{"name": "A", "node": {"type": "container", "children": [{"content": "x"}]}}`,
			wantMsg: `is missing a "type"`,
		},
		{
			name:    "template node without type",
			json:    `{"name": "A", "node": {"type": "list", "repeat": {"source": "s", "node": {}}}}`,
			wantMsg: `is missing a "type"`,
		},
		{
			name:    "bad style reference",
			json:    `{"name": "A", "node": {"type": "container", "referencedStyles": [{"type": "inline", "id": "x"}]}}`,
			wantMsg: `style reference type "inline" is not supported`,
		},
		{
			name:    "file name not a string",
			json:    `{"name": "A", "meta": {"fileName": 3}, "node": {"type": "container"}}`,
			wantMsg: `"meta.fileName" must be a string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.json))
			require.NoError(t, err)

			res := v.ValidateComponentSchema(doc)
			assert.False(t, res.Valid)
			assert.Contains(t, res.ErrorMsg, tt.wantMsg)
		})
	}
}

func TestValidateComponentContent(t *testing.T) {
	v := NewValidator()

	doc, err := Decode([]byte(homePage))
	require.NoError(t, err)

	c, err := ParseComponentJSON(doc)
	require.NoError(t, err)

	res := v.ValidateComponentContent(c)
	assert.True(t, res.Valid, res.ErrorMsg)

	c.Node.ReferencedStyles = append(c.Node.ReferencedStyles, StyleRef{Type: StyleRefComponent, ID: "missing"})
	c.Node.Children[1].Repeat.Source = ""

	res = v.ValidateComponentContent(c)
	assert.False(t, res.Valid)
	assert.Contains(t, res.ErrorMsg, `style set "missing" is not defined`)
	assert.Contains(t, res.ErrorMsg, "node.children[1].repeat")
}

func TestCheckContent_Warnings(t *testing.T) {
	c := &Component{
		Name: "Card",
		Node: &Node{
			Type:     "container",
			Content:  "title",
			Attrs:    map[string]any{"style": "color: red"},
			Children: []*Node{{Type: "text"}},
		},
	}

	diags := CheckContent(c)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, "style_attribute", diags.Warnings[0].Code)
	assert.Equal(t, "content_and_children", diags.Warnings[1].Code)
}

func TestCheckContent_StyleSets(t *testing.T) {
	c := &Component{
		Name: "Card",
		StyleSetDefinitions: map[string]StyleSet{
			"primaryButton": {Content: map[string]any{"color": "red"}},
			"spare":         {Content: map[string]any{"color": "blue"}},
		},
		Node: &Node{
			Type:             "container",
			ReferencedStyles: []StyleRef{{Type: StyleRefComponent, ID: "primaryButon"}},
		},
	}

	diags := CheckContent(c)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, []string{"primaryButton"}, diags.Errors[0].Suggestions)
	assert.Contains(t, diags.Error().Error(), `(did you mean primaryButton?)`)

	require.Len(t, diags.Infos, 2)
	assert.Equal(t, "unused_style_set", diags.Infos[0].Code)
	assert.Len(t, diags.All(), 3)
}

func TestCheckContent_InvalidName(t *testing.T) {
	diags := CheckContent(&Component{Name: "1st page", Node: &Node{Type: "container"}})
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "invalid_name", diags.Errors[0].Code)
}

func TestNodeClone_IsDeep(t *testing.T) {
	n := &Node{
		Type:     "container",
		Attrs:    map[string]any{"id": "a"},
		Children: []*Node{{Type: "text", Content: "Hi"}},
		Repeat:   &Template{Source: "items", Node: &Node{Type: "text"}},
	}

	c := n.Clone()
	c.Attrs["id"] = "b"
	c.Children[0].Content = "Bye"
	c.Repeat.Node.Type = "image"

	assert.Equal(t, "a", n.Attrs["id"])
	assert.Equal(t, "Hi", n.Children[0].Content)
	assert.Equal(t, "text", n.Repeat.Node.Type)
}

func TestWalk_Order(t *testing.T) {
	n := &Node{
		Type: "a",
		Children: []*Node{
			{Type: "b", Children: []*Node{{Type: "c"}}},
			{Type: "d"},
		},
		Conditional: &Template{Source: "x", Node: &Node{Type: "e"}},
	}

	var seen []string
	Walk(n, func(n *Node) bool {
		seen = append(seen, n.Type)

		return n.Type != "b"
	})

	assert.Equal(t, []string{"a", "b", "d", "e"}, seen)
}
