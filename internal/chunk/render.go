package chunk

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Rule is one CSS rule: a selector and its declarations.
type Rule struct {
	Selector     string
	Declarations map[string]string
}

// Stylesheet is structured CSS content, rendered when linked.
type Stylesheet []Rule

// String renders the stylesheet with declarations sorted by property.
func (s Stylesheet) String() string {
	var b strings.Builder

	for i, r := range s {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(r.Selector)
		b.WriteString(" {\n")

		for _, prop := range slices.Sorted(maps.Keys(r.Declarations)) {
			fmt.Fprintf(&b, "  %s: %s;\n", prop, r.Declarations[prop])
		}

		b.WriteString("}")
	}

	return b.String()
}

// Render turns chunk content into text.
func Render(c *Chunk) (string, error) {
	switch v := c.Content.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case *html.Node:
		return renderHTML(v)
	case []*html.Node:
		var b strings.Builder

		for _, n := range v {
			s, err := renderHTML(n)
			if err != nil {
				return "", err
			}

			b.WriteString(s)
		}

		return b.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("chunk %q: cannot render %s content of type %T", c.Name, c.FileType, c.Content)
	}
}

// renderHTML renders a node; a DocumentNode renders its children only so
// fragments built under a synthetic root come out without wrappers.
func renderHTML(n *html.Node) (string, error) {
	var b strings.Builder

	if n.Type == html.DocumentNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&b, c); err != nil {
				return "", err
			}
		}

		return b.String(), nil
	}

	if err := html.Render(&b, n); err != nil {
		return "", err
	}

	return b.String(), nil
}
