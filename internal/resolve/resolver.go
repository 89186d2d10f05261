// Package resolve rewrites abstract UIDL nodes into concrete,
// output-ready elements using the layered mapping tables.
package resolve

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"sync"

	"uidl-generator/internal/mapping"
	"uidl-generator/internal/match"
	"uidl-generator/internal/uidl"
)

// maxSuggestions bounds the "did you mean" list of a ResolutionError.
const maxSuggestions = 3

// assetAttrs are the attributes whose root-relative values receive the
// assets prefix.
var assetAttrs = map[string]bool{"src": true, "href": true, "poster": true}

// Options configures a single resolution call.
type Options struct {
	// Mapping is a per-call table that shadows every registered table.
	Mapping *mapping.Table
	// AssetsPrefix is prepended to root-relative src/href/poster values.
	AssetsPrefix string
	// LocalDependenciesPrefix is prepended to the path of local dependencies.
	LocalDependenciesPrefix string
}

// ResolutionError reports a node whose type no mapping table knows.
type ResolutionError struct {
	// Type is the unknown element type.
	Type string
	// Path locates the node, e.g. "node.children[1].repeat.node".
	Path string
	// Suggestions are known types with similar names.
	Suggestions []string
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("cannot resolve element type %q at %s", e.Type, e.Path)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return msg
}

// Resolver maps UIDL element types to concrete elements.
type Resolver struct {
	mu     sync.RWMutex
	layers mapping.Layers
}

// New creates a Resolver over the built-in HTML table and the given
// override tables, later tables taking precedence.
func New(overrides ...*mapping.Table) *Resolver {
	return NewWithBase(mapping.HTML(), overrides...)
}

// NewWithBase creates a Resolver over a custom base table.
func NewWithBase(base *mapping.Table, overrides ...*mapping.Table) *Resolver {
	layers := mapping.Layers{base}
	for _, t := range overrides {
		if t != nil {
			layers = layers.Push(t)
		}
	}

	return &Resolver{layers: layers}
}

// AddMapping registers a table above every table registered so far.
// Resolutions already in flight keep the stack they started with.
func (r *Resolver) AddMapping(t *mapping.Table) {
	if t == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.layers = r.layers.Push(t)
}

// Layers returns a snapshot of the current table stack.
func (r *Resolver) Layers() mapping.Layers {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.layers
}

// ResolveUIDL resolves every node of the component in place and returns it.
func (r *Resolver) ResolveUIDL(c *uidl.Component, opts Options) (*uidl.Component, error) {
	if c == nil || c.Node == nil {
		return nil, errors.New("component has no root node to resolve")
	}

	res := r.session(opts)
	if err := res.node(c.Node, "node"); err != nil {
		return nil, err
	}

	return c, nil
}

// ResolveElement resolves a single node and its subtree in place. Plugins
// use it for nodes they synthesize after resolution has run.
func (r *Resolver) ResolveElement(n *uidl.Node, opts Options) (*uidl.Node, error) {
	if n == nil {
		return nil, errors.New("cannot resolve a nil element")
	}

	res := r.session(opts)
	if err := res.node(n, "element"); err != nil {
		return nil, err
	}

	return n, nil
}

func (r *Resolver) session(opts Options) *session {
	layers := r.Layers()
	if opts.Mapping != nil {
		layers = layers.Push(opts.Mapping)
	}

	return &session{layers: layers, opts: opts}
}

// session is one resolution call over a fixed table stack.
type session struct {
	layers mapping.Layers
	opts   Options
}

func (s *session) node(n *uidl.Node, path string) error {
	entry, ok := s.layers.Lookup(n.Type)
	if !ok {
		return &ResolutionError{
			Type:        n.Type,
			Path:        path,
			Suggestions: match.Suggest(n.Type, s.layers.Types(), maxSuggestions, match.DefaultMinSimilarity),
		}
	}

	n.ElementType = entry.ElementType
	n.SelfClosing = entry.SelfClosing
	n.Attrs = s.attrs(entry.Attrs, n.Attrs)
	n.Events = s.events(n.Events)

	switch entry.Styles {
	case mapping.StylesIgnore:
		n.Style = nil
	default:
		n.Style = overlay(entry.Style, n.Style, nil)
	}

	if n.Dependency == nil && entry.Dependency != nil {
		n.Dependency = s.dependency(*entry.Dependency)
	}

	for i, child := range n.Children {
		if child == nil {
			continue
		}

		if err := s.node(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}

	if err := s.template(n.Repeat, path+".repeat"); err != nil {
		return err
	}

	return s.template(n.Conditional, path+".conditional")
}

func (s *session) template(t *uidl.Template, path string) error {
	if t == nil || t.Node == nil {
		return nil
	}

	return s.node(t.Node, path+".node")
}

// attrs lays the node's attributes over the mapping defaults, renaming
// them through the attribute tables.
func (s *session) attrs(defaults, own map[string]any) map[string]any {
	out := overlay(defaults, own, s.layers.Attribute)

	if s.opts.AssetsPrefix == "" {
		return out
	}

	for k, v := range out {
		if !assetAttrs[k] {
			continue
		}

		if str, ok := v.(string); ok && isRootRelative(str) && !strings.HasPrefix(str, s.opts.AssetsPrefix) {
			out[k] = strings.TrimSuffix(s.opts.AssetsPrefix, "/") + str
		}
	}

	return out
}

func (s *session) events(own map[string][]uidl.EventHandler) map[string][]uidl.EventHandler {
	if len(own) == 0 {
		return own
	}

	out := make(map[string][]uidl.EventHandler, len(own))
	for name, handlers := range own {
		target := s.layers.Event(name)
		out[target] = append(out[target], handlers...)
	}

	return out
}

func (s *session) dependency(dep uidl.Dependency) *uidl.Dependency {
	prefix := s.opts.LocalDependenciesPrefix
	if dep.Type == uidl.DependencyLocal && prefix != "" && !strings.HasPrefix(dep.Path, prefix) {
		dep.Path = prefix + dep.Path
	}

	return &dep
}

// overlay copies base, then writes own on top, optionally renaming the
// keys of own. It returns nil when both are empty.
func overlay(base, own map[string]any, rename func(string) string) map[string]any {
	if len(base) == 0 && len(own) == 0 {
		return nil
	}

	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]any, len(own))
	}

	for k, v := range own {
		if rename != nil {
			k = rename(k)
		}

		out[k] = v
	}

	return out
}

func isRootRelative(v string) bool {
	return strings.HasPrefix(v, "/") && !strings.HasPrefix(v, "//")
}
