package plugins

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"

	"uidl-generator/internal/pipeline"
	"uidl-generator/internal/uidl"
)

// Markdown renders the content of markdown nodes with goldmark and
// injects the result into the markup chunk. It must run after Markup.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates the plugin with GitHub-flavoured markdown enabled.
func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Name implements pipeline.Plugin.
func (*Markdown) Name() string { return "markdown" }

// Run implements pipeline.Plugin.
func (m *Markdown) Run(_ context.Context, s *pipeline.Structure) (*pipeline.Structure, error) {
	if s.UIDL == nil || !hasRenderedMarkdown(s.UIDL.Node) {
		return s, nil
	}

	markup := s.Chunk(MarkupChunk)
	if markup == nil {
		return nil, errors.New("markup chunk not found, register the markup plugin first")
	}

	root, ok := markup.Content.(*html.Node)
	if !ok {
		return nil, fmt.Errorf("markup chunk holds %T, want *html.Node", markup.Content)
	}

	for _, el := range markdownTargets(root) {
		if err := m.inject(el); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// inject renders the source carried by the element's markdown attribute
// into the element and drops the attribute.
func (m *Markdown) inject(el *html.Node) error {
	src, _ := attrValue(el, markdownAttr)

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	nodes, err := html.ParseFragment(&buf, el)
	if err != nil {
		return fmt.Errorf("parsing rendered markdown: %w", err)
	}

	el.Attr = slices.DeleteFunc(el.Attr, func(a html.Attribute) bool { return a.Key == markdownAttr })

	first := el.FirstChild
	for _, n := range nodes {
		el.InsertBefore(n, first)
	}

	return nil
}

// hasRenderedMarkdown reports whether the markup plugin emits at least one
// markdown element for the tree.
func hasRenderedMarkdown(n *uidl.Node) bool {
	found := false

	walkRendered(n, func(n *uidl.Node) bool {
		if n.Type == markdownType {
			found = true
		}

		return !found
	})

	return found
}

// markdownTargets returns the elements flagged as markdown containers in
// document order.
func markdownTargets(root *html.Node) []*html.Node {
	var out []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if _, ok := attrValue(n, markdownAttr); ok && n.Type == html.ElementNode {
			out = append(out, n)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return out
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}
