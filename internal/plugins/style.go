package plugins

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/match"
	"uidl-generator/internal/pipeline"
	"uidl-generator/internal/uidl"
)

// Style emits a css chunk for the component's style sets and inline
// styles. Components without any style produce no chunk.
type Style struct{}

// Name implements pipeline.Plugin.
func (Style) Name() string { return "style" }

// Run implements pipeline.Plugin.
func (Style) Run(_ context.Context, s *pipeline.Structure) (*pipeline.Structure, error) {
	c := s.UIDL

	sheet := StyleSetRules(c.StyleSetDefinitions)

	classes := inlineClasses(c)
	uidl.Walk(c.Node, func(n *uidl.Node) bool {
		if class, ok := classes[n]; ok {
			sheet = append(sheet, chunk.Rule{Selector: "." + class, Declarations: declarations(n.Style)})
		}

		return true
	})

	if len(sheet) == 0 {
		return s, nil
	}

	s.AddChunk(&chunk.Chunk{
		Name:     StyleChunk,
		FileType: chunk.FileTypeCSS,
		Content:  sheet,
	})

	return s, nil
}

// StyleSetRules renders style set definitions as class rules, sorted by id.
func StyleSetRules(sets map[string]uidl.StyleSet) chunk.Stylesheet {
	var sheet chunk.Stylesheet

	for _, id := range slices.Sorted(maps.Keys(sets)) {
		sheet = append(sheet, chunk.Rule{
			Selector:     "." + match.DashCase(id),
			Declarations: declarations(sets[id].Content),
		})
	}

	return sheet
}

// declarations converts UIDL style rules to CSS declarations, dash-casing
// property names ("backgroundColor" -> "background-color").
func declarations(style map[string]any) map[string]string {
	out := make(map[string]string, len(style))

	for prop, v := range style {
		out[cssProperty(prop)] = cssValue(v)
	}

	return out
}

// cssProperty dash-cases camel-cased names and leaves already dashed ones
// (including vendor prefixes such as "-webkit-transform") alone.
func cssProperty(name string) string {
	if strings.Contains(name, "-") {
		return name
	}

	return match.DashCase(name)
}

func cssValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}

		return fmt.Sprint(val)
	default:
		return fmt.Sprint(val)
	}
}
