// Package dom implements the document surgery used by the project merge
// stage on top of golang.org/x/net/html.
package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document or fragment. Scopes name the first
// element with that tag ("head", "body"); the empty scope is the root.
// Inserted markup is always parsed as body content, where head elements
// such as meta, link, script and title are kept as written.
type Document struct {
	root *html.Node
}

// Parser creates documents from markup.
type Parser struct{}

// Document parses a full document. Missing html, head and body elements
// are synthesized.
func (Parser) Document(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return &Document{root: root}, nil
}

// Fragment parses markup as body content.
func (Parser) Fragment(src string) (*Document, error) {
	nodes, err := html.ParseFragment(strings.NewReader(src), bodyContext())
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	return &Document{root: root}, nil
}

// Find returns the serialized elements with the tag inside scope, in
// document order.
func (d *Document) Find(scope, tag string) ([]string, error) {
	var out []string

	for _, n := range d.find(scope, tag) {
		var b strings.Builder
		if err := html.Render(&b, n); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", tag, err)
		}

		out = append(out, b.String())
	}

	return out, nil
}

// Remove detaches every element with the tag inside scope.
func (d *Document) Remove(scope, tag string) {
	for _, n := range d.find(scope, tag) {
		n.Parent.RemoveChild(n)
	}
}

// Append parses markup and adds it as the last children of scope.
func (d *Document) Append(scope, markup string) error {
	parent, nodes, err := d.parseInto(scope, markup)
	if err != nil {
		return err
	}

	for _, n := range nodes {
		parent.AppendChild(n)
	}

	return nil
}

// Prepend parses markup and adds it as the first children of scope,
// keeping its order.
func (d *Document) Prepend(scope, markup string) error {
	parent, nodes, err := d.parseInto(scope, markup)
	if err != nil {
		return err
	}

	first := parent.FirstChild
	for _, n := range nodes {
		parent.InsertBefore(n, first)
	}

	return nil
}

// Empty removes every child of scope.
func (d *Document) Empty(scope string) {
	parent := d.scope(scope)
	if parent == nil {
		return
	}

	for parent.FirstChild != nil {
		parent.RemoveChild(parent.FirstChild)
	}
}

// HTML serializes the document. A fragment serializes its nodes only.
func (d *Document) HTML() (string, error) {
	var b strings.Builder

	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("rendering document: %w", err)
		}
	}

	return b.String(), nil
}

func (d *Document) parseInto(scope, markup string) (*html.Node, []*html.Node, error) {
	parent := d.scope(scope)
	if parent == nil {
		return nil, nil, fmt.Errorf("scope %q not found", scope)
	}

	if strings.TrimSpace(markup) == "" {
		return parent, nil, nil
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), bodyContext())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing markup for %q: %w", scope, err)
	}

	return parent, nodes, nil
}

func (d *Document) scope(name string) *html.Node {
	if name == "" {
		return d.root
	}

	return first(d.root, name)
}

func (d *Document) find(scope, tag string) []*html.Node {
	parent := d.scope(scope)
	if parent == nil {
		return nil
	}

	var out []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				out = append(out, c)

				continue
			}

			walk(c)
		}
	}
	walk(parent)

	return out
}

func first(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := first(c, tag); found != nil {
			return found
		}
	}

	return nil
}

func bodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
}
