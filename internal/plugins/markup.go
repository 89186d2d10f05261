// Package plugins holds the component plugins shipped with the generator:
// HTML markup, CSS styles, markdown content and dependency collection.
package plugins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/match"
	"uidl-generator/internal/pipeline"
	"uidl-generator/internal/uidl"
)

// Chunk names produced by the built-in plugins.
const (
	MarkupChunk = "markup"
	StyleChunk  = "style"
)

// Data attributes used to carry template and markdown information.
const (
	repeatAttr   = "data-repeat"
	ifAttr       = "data-if"
	markdownAttr = "data-markdown"
)

// markdownType is the UIDL element type whose content is markdown.
const markdownType = "markdown"

// Markup builds the HTML tree of a resolved component as one html chunk.
type Markup struct{}

// Name implements pipeline.Plugin.
func (Markup) Name() string { return "markup" }

// Run implements pipeline.Plugin.
func (Markup) Run(_ context.Context, s *pipeline.Structure) (*pipeline.Structure, error) {
	c := s.UIDL
	if c == nil || c.Node == nil {
		return nil, errors.New("component has no root node")
	}

	b := &markupBuilder{classes: inlineClasses(c)}

	root := &html.Node{Type: html.DocumentNode}
	if c.Meta != nil {
		appendHeadTags(root, c.Meta)
	}

	el, err := b.element(c.Node)
	if err != nil {
		return nil, err
	}

	root.AppendChild(el)

	s.AddChunk(&chunk.Chunk{
		Name:     MarkupChunk,
		FileType: chunk.FileTypeHTML,
		Content:  root,
	})

	return s, nil
}

type markupBuilder struct {
	classes map[*uidl.Node]string
}

func (b *markupBuilder) element(n *uidl.Node) (*html.Node, error) {
	if n.ElementType == "" {
		return nil, fmt.Errorf("node of type %q was not resolved", n.Type)
	}

	el := newElement(n.ElementType)
	el.Attr = b.attributes(n)

	if n.SelfClosing {
		return el, nil
	}

	if n.Content != "" && n.Type != markdownType {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}

	for _, child := range n.Children {
		if child == nil {
			continue
		}

		childEl, err := b.element(child)
		if err != nil {
			return nil, err
		}

		el.AppendChild(childEl)
	}

	for _, t := range []struct {
		attr string
		tpl  *uidl.Template
	}{{repeatAttr, n.Repeat}, {ifAttr, n.Conditional}} {
		if t.tpl == nil || t.tpl.Node == nil {
			continue
		}

		wrapper := newElement("template")
		wrapper.Attr = []html.Attribute{{Key: t.attr, Val: t.tpl.Source}}

		inner, err := b.element(t.tpl.Node)
		if err != nil {
			return nil, err
		}

		wrapper.AppendChild(inner)
		el.AppendChild(wrapper)
	}

	return el, nil
}

func (b *markupBuilder) attributes(n *uidl.Node) []html.Attribute {
	var attrs []html.Attribute

	classes := classList(n, b.classes[n])

	for _, key := range slices.Sorted(maps.Keys(n.Attrs)) {
		v := n.Attrs[key]

		if key == "class" {
			if s, ok := v.(string); ok && s != "" {
				classes = append([]string{s}, classes...)
			}

			continue
		}

		switch val := v.(type) {
		case bool:
			if val {
				attrs = append(attrs, html.Attribute{Key: key})
			}
		case nil:
		default:
			attrs = append(attrs, html.Attribute{Key: key, Val: fmt.Sprint(val)})
		}
	}

	if len(classes) > 0 {
		attrs = append([]html.Attribute{{Key: "class", Val: strings.Join(classes, " ")}}, attrs...)
	}

	for _, event := range slices.Sorted(maps.Keys(n.Events)) {
		attrs = append(attrs, html.Attribute{Key: event, Val: handlerCalls(n.Events[event])})
	}

	if n.Type == markdownType {
		attrs = append(attrs, html.Attribute{Key: markdownAttr, Val: n.Content})
	}

	return attrs
}

// classList returns the classes generated for inline style and style
// references of a node.
func classList(n *uidl.Node, inline string) []string {
	var classes []string

	if inline != "" {
		classes = append(classes, inline)
	}

	for _, ref := range n.ReferencedStyles {
		classes = append(classes, match.DashCase(ref.ID))
	}

	return classes
}

func handlerCalls(handlers []uidl.EventHandler) string {
	calls := make([]string, 0, len(handlers))

	for _, h := range handlers {
		args := ""

		if len(h.Args) > 0 {
			data, err := json.Marshal(h.Args)
			if err == nil {
				args = string(data)
			}
		}

		calls = append(calls, fmt.Sprintf("%s(%s)", h.Type, args))
	}

	return strings.Join(calls, "; ")
}

// appendHeadTags emits the page title and meta tags ahead of the content.
// The project merge stage lifts them into the shared document head.
func appendHeadTags(root *html.Node, meta *uidl.Meta) {
	if meta.Title != "" {
		title := newElement("title")
		title.AppendChild(&html.Node{Type: html.TextNode, Data: meta.Title})
		root.AppendChild(title)
	}

	for _, m := range meta.Metas {
		tag := newElement("meta")
		for _, key := range slices.Sorted(maps.Keys(m)) {
			tag.Attr = append(tag.Attr, html.Attribute{Key: key, Val: m[key]})
		}

		root.AppendChild(tag)
	}
}

// walkRendered visits the nodes Markup turns into elements, in the order
// it renders them. Descendants of self-closing nodes are never rendered.
func walkRendered(n *uidl.Node, fn func(*uidl.Node) bool) {
	if n == nil || !fn(n) || n.SelfClosing {
		return
	}

	for _, child := range n.Children {
		walkRendered(child, fn)
	}

	for _, tpl := range []*uidl.Template{n.Repeat, n.Conditional} {
		if tpl != nil {
			walkRendered(tpl.Node, fn)
		}
	}
}

func newElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// inlineClasses names a class for every node carrying inline style, in
// tree walk order. Markup and Style both derive names from it.
func inlineClasses(c *uidl.Component) map[*uidl.Node]string {
	classes := make(map[*uidl.Node]string)
	base := match.DashCase(c.Name)
	i := 0

	uidl.Walk(c.Node, func(n *uidl.Node) bool {
		if len(n.Style) > 0 {
			classes[n] = fmt.Sprintf("%s-%s-%d", base, match.DashCase(n.Type), i)
			i++
		}

		return true
	})

	return classes
}
