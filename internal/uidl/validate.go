package uidl

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/ohler55/ojg/jp"

	"uidl-generator/internal/diagnostic"
	"uidl-generator/internal/match"
)

// Validation stages.
const (
	StageSchema  = "schema"
	StageContent = "content"
)

// Result is the outcome of one validation pass.
type Result struct {
	Valid    bool
	ErrorMsg string
}

// ValidationError reports a document that failed schema or content
// validation. Its message is the validator's message, unchanged.
type ValidationError struct {
	Stage string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// nodeQueries select every node object of a component document.
var nodeQueries = []string{
	"$.node",
	"$..children[*]",
	"$..repeat.node",
	"$..conditional.node",
}

// Validator is the default schema and content validator.
type Validator struct {
	nodes []jp.Expr
	refs  jp.Expr
	meta  jp.Expr
}

// NewValidator compiles the JSONPath queries used by schema validation.
func NewValidator() *Validator {
	v := &Validator{
		refs: jp.MustParseString("$..referencedStyles[*]"),
		meta: jp.MustParseString("$.meta"),
	}

	for _, q := range nodeQueries {
		v.nodes = append(v.nodes, jp.MustParseString(q))
	}

	return v
}

// ValidateComponentSchema checks the structural shape of a raw document.
func (v *Validator) ValidateComponentSchema(doc map[string]any) Result {
	var problems []string

	name, ok := doc["name"].(string)
	if !ok || name == "" {
		problems = append(problems, `"name" must be a non-empty string`)
	}

	node, ok := doc["node"].(map[string]any)
	if !ok || node == nil {
		problems = append(problems, `"node" must be an object`)
	}

	for _, m := range v.meta.Get(doc) {
		meta, ok := m.(map[string]any)
		if !ok {
			problems = append(problems, `"meta" must be an object`)

			continue
		}

		if fn, present := meta["fileName"]; present {
			if _, ok := fn.(string); !ok {
				problems = append(problems, `"meta.fileName" must be a string`)
			}
		}
	}

	for _, x := range v.nodes {
		for _, n := range x.Get(doc) {
			obj, ok := n.(map[string]any)
			if !ok {
				problems = append(problems, fmt.Sprintf("node %v must be an object", n))

				continue
			}

			if t, ok := obj["type"].(string); !ok || t == "" {
				problems = append(problems, fmt.Sprintf("node %s is missing a \"type\"", describe(obj)))
			}
		}
	}

	for _, r := range v.refs.Get(doc) {
		ref, ok := r.(map[string]any)
		if !ok {
			problems = append(problems, fmt.Sprintf("style reference %v must be an object", r))

			continue
		}

		typ, _ := ref["type"].(string)
		if typ != StyleRefComponent && typ != StyleRefProject {
			problems = append(problems, fmt.Sprintf("style reference type %q is not supported", typ))
		}

		if id, ok := ref["id"].(string); !ok || id == "" {
			problems = append(problems, "style reference is missing an \"id\"")
		}
	}

	if len(problems) > 0 {
		return Result{ErrorMsg: "UIDL schema validation failed: " + strings.Join(problems, "; ")}
	}

	return Result{Valid: true}
}

// ValidateComponentContent checks the semantic consistency of a parsed
// component.
func (v *Validator) ValidateComponentContent(c *Component) Result {
	diags := CheckContent(c)
	if err := diags.Error(); err != nil {
		return Result{ErrorMsg: "UIDL content validation failed: " + err.Error()}
	}

	return Result{Valid: true}
}

// CheckContent collects content diagnostics for a component.
func CheckContent(c *Component) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if c == nil {
		diags.AddError("missing_component", "component is nil", "", "")

		return diags
	}

	if !isIdentifier(c.Name) {
		diags.AddError("invalid_name",
			fmt.Sprintf("component name %q must start with a letter and contain only letters, digits, '-' or '_'", c.Name),
			c.Name, "")
	}

	if c.Node == nil {
		diags.AddError("missing_node", "component has no root node", c.Name, "")

		return diags
	}

	checkNode(c, c.Node, "node", &diags)
	checkUnusedStyleSets(c, &diags)

	return diags
}

// checkUnusedStyleSets reports component style sets no node references.
func checkUnusedStyleSets(c *Component, diags *diagnostic.Diagnostics) {
	used := make(map[string]bool)

	Walk(c.Node, func(n *Node) bool {
		for _, ref := range n.ReferencedStyles {
			if ref.Type == StyleRefComponent {
				used[ref.ID] = true
			}
		}

		return true
	})

	for _, id := range sortedKeys(c.StyleSetDefinitions) {
		if !used[id] {
			diags.AddInfo("unused_style_set", fmt.Sprintf("style set %q is never referenced", id), c.Name, "")
		}
	}
}

func checkNode(c *Component, n *Node, path string, diags *diagnostic.Diagnostics) {
	if n.Type == "" {
		diags.AddError("missing_type", "node has no type", c.Name, path)
	}

	for _, ref := range n.ReferencedStyles {
		if ref.Type != StyleRefComponent {
			continue
		}

		if _, ok := c.StyleSetDefinitions[ref.ID]; !ok {
			diags.AddError("unknown_style_set",
				fmt.Sprintf("style set %q is not defined on the component", ref.ID), c.Name, path,
				match.Suggest(ref.ID, sortedKeys(c.StyleSetDefinitions), 3, match.DefaultMinSimilarity)...)
		}
	}

	for _, event := range sortedKeys(n.Events) {
		for i, h := range n.Events[event] {
			if h.Type == "" {
				diags.AddError("invalid_handler",
					fmt.Sprintf("handler %d of event %q has no type", i, event), c.Name, path)
			}
		}
	}

	if _, ok := n.Attrs["style"]; ok {
		diags.AddWarning("style_attribute",
			"inline \"style\" attribute bypasses style resolution, use the style block", c.Name, path)
	}

	if n.Content != "" && len(n.Children) > 0 {
		diags.AddWarning("content_and_children",
			"node has both text content and children, content is rendered first", c.Name, path)
	}

	for i, child := range n.Children {
		if child == nil {
			diags.AddError("nil_child", fmt.Sprintf("child %d is empty", i), c.Name, path)

			continue
		}

		checkNode(c, child, fmt.Sprintf("%s.children[%d]", path, i), diags)
	}

	checkTemplate(c, n.Repeat, path+".repeat", diags)
	checkTemplate(c, n.Conditional, path+".conditional", diags)
}

func checkTemplate(c *Component, t *Template, path string, diags *diagnostic.Diagnostics) {
	if t == nil {
		return
	}

	if t.Source == "" {
		diags.AddError("empty_template_source", "template has no source", c.Name, path)
	}

	if t.Node == nil {
		diags.AddError("empty_template", "template has no node", c.Name, path)

		return
	}

	checkNode(c, t.Node, path+".node", diags)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '-' || r == '_'):
		default:
			return false
		}
	}

	return true
}

func describe(obj map[string]any) string {
	if c, ok := obj["content"].(string); ok && c != "" {
		return fmt.Sprintf("with content %q", c)
	}

	return fmt.Sprintf("with %d keys", len(obj))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
