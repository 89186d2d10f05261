package uidl

import (
	"maps"
	"slices"
)

// Style reference kinds.
const (
	// StyleRefComponent points at a style set defined on the component itself.
	StyleRefComponent = "component-referenced"
	// StyleRefProject points at a style set defined once for the whole project.
	StyleRefProject = "project-referenced"
)

// Dependency kinds.
const (
	DependencyPackage = "package"
	DependencyLocal   = "local"
)

// Component is the root of one UIDL document.
type Component struct {
	Name                string              `json:"name"`
	Meta                *Meta               `json:"meta,omitempty"`
	Node                *Node               `json:"node"`
	StyleSetDefinitions map[string]StyleSet `json:"styleSetDefinitions,omitempty"`
}

// Meta holds document-level information about a component.
type Meta struct {
	// FileName overrides the component name when naming output files.
	FileName string `json:"fileName,omitempty"`
	// Title is emitted as the page title when the component is a page.
	Title string `json:"title,omitempty"`
	// Metas are emitted as head meta tags when the component is a page.
	Metas []MetaTag `json:"metas,omitempty"`
}

// MetaTag is a single <meta> declaration. Keys are attribute names.
type MetaTag map[string]string

// Node is one element of the UI tree.
type Node struct {
	// Type is the abstract element type, looked up in the mapping tables.
	Type string `json:"type"`
	// Content is the text content of leaf nodes.
	Content string `json:"content,omitempty"`
	// Attrs maps attribute names to static values.
	Attrs map[string]any `json:"attrs,omitempty"`
	// Events maps event names to the handlers they trigger.
	Events map[string][]EventHandler `json:"events,omitempty"`
	// Style holds inline style rules.
	Style map[string]any `json:"style,omitempty"`
	// ReferencedStyles points at shared style sets. They are never inlined
	// during resolution.
	ReferencedStyles []StyleRef `json:"referencedStyles,omitempty"`
	Children         []*Node    `json:"children,omitempty"`
	// Repeat renders its template once per item of a data source.
	Repeat *Template `json:"repeat,omitempty"`
	// Conditional renders its template only when the condition holds.
	Conditional *Template `json:"conditional,omitempty"`

	// Filled by resolution.
	ElementType string      `json:"elementType,omitempty"`
	SelfClosing bool        `json:"selfClosing,omitempty"`
	Dependency  *Dependency `json:"dependency,omitempty"`
}

// Template is a child node rendered under a repeat or conditional construct.
type Template struct {
	// Source is the data source (for repeats) or the condition expression.
	Source string `json:"source"`
	Node   *Node  `json:"node"`
}

// EventHandler is a single action bound to an event.
type EventHandler struct {
	Type string         `json:"type"`
	Args map[string]any `json:"args,omitempty"`
}

// StyleRef references a shared style set.
type StyleRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// StyleSet is a named, reusable group of style rules.
type StyleSet struct {
	Content map[string]any `json:"content"`
}

// Dependency is an external package or local module a component needs.
type Dependency struct {
	Type    string `json:"type"`
	Path    string `json:"path"`
	Version string `json:"version,omitempty"`
}

// Project groups page components that share one shell document.
type Project struct {
	Name                string              `json:"name"`
	Globals             Globals             `json:"globals"`
	StyleSetDefinitions map[string]StyleSet `json:"styleSetDefinitions,omitempty"`
	Pages               []*Component        `json:"pages"`
}

// Globals are the document-level settings of the shell page.
type Globals struct {
	Title       string    `json:"title,omitempty"`
	Language    string    `json:"language,omitempty"`
	Meta        []MetaTag `json:"meta,omitempty"`
	HeadScripts []string  `json:"headScripts,omitempty"`
	BodyScripts []string  `json:"bodyScripts,omitempty"`
}

// Clone returns a deep copy of the node and its subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	c := *n
	c.Attrs = maps.Clone(n.Attrs)
	c.Style = maps.Clone(n.Style)
	c.ReferencedStyles = slices.Clone(n.ReferencedStyles)

	if n.Events != nil {
		c.Events = make(map[string][]EventHandler, len(n.Events))
		for name, handlers := range n.Events {
			c.Events[name] = slices.Clone(handlers)
		}
	}

	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}

	c.Repeat = n.Repeat.clone()
	c.Conditional = n.Conditional.clone()

	if n.Dependency != nil {
		dep := *n.Dependency
		c.Dependency = &dep
	}

	return &c
}

func (t *Template) clone() *Template {
	if t == nil {
		return nil
	}

	return &Template{Source: t.Source, Node: t.Node.Clone()}
}

// Clone returns a deep copy of the component.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}

	out := *c
	out.Node = c.Node.Clone()

	if c.Meta != nil {
		meta := *c.Meta
		meta.Metas = slices.Clone(c.Meta.Metas)
		out.Meta = &meta
	}

	out.StyleSetDefinitions = maps.Clone(c.StyleSetDefinitions)

	return &out
}

// FileName returns the name output files should be derived from:
// meta.fileName when present, the component name otherwise.
func (c *Component) FileName() string {
	if c.Meta != nil && c.Meta.FileName != "" {
		return c.Meta.FileName
	}

	return c.Name
}

// Walk visits the node and its subtree depth-first, parents before
// children, children before templates. Returning false from fn skips the
// subtree of the current node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, child := range n.Children {
		Walk(child, fn)
	}

	if n.Repeat != nil {
		Walk(n.Repeat.Node, fn)
	}

	if n.Conditional != nil {
		Walk(n.Conditional.Node, fn)
	}
}
