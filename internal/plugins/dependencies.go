package plugins

import (
	"context"

	"uidl-generator/internal/pipeline"
	"uidl-generator/internal/uidl"
)

// Dependencies declares the dependencies resolved onto nodes, keyed by
// path so every package is declared once.
type Dependencies struct{}

// Name implements pipeline.Plugin.
func (Dependencies) Name() string { return "dependencies" }

// Run implements pipeline.Plugin.
func (Dependencies) Run(_ context.Context, s *pipeline.Structure) (*pipeline.Structure, error) {
	uidl.Walk(s.UIDL.Node, func(n *uidl.Node) bool {
		if n.Dependency != nil {
			s.AddDependency(n.Dependency.Path, *n.Dependency)
		}

		return true
	})

	return s, nil
}

// Defaults returns the built-in plugins in their required order.
func Defaults() []pipeline.Plugin {
	return []pipeline.Plugin{Markup{}, NewMarkdown(), Style{}, Dependencies{}}
}
