// Package pipeline runs the ordered plugin list (the assembly line) that
// turns a resolved UIDL tree into chunks and external dependencies.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/resolve"
	"uidl-generator/internal/uidl"
)

// Options is handed to every plugin unchanged.
type Options struct {
	// Resolve carries the options the tree was resolved with.
	Resolve resolve.Options
	// Extra is free-form configuration for plugins.
	Extra map[string]any
}

// Structure is the accumulator threaded through the plugins.
type Structure struct {
	UIDL         *uidl.Component
	Options      Options
	Chunks       []*chunk.Chunk
	Dependencies map[string]uidl.Dependency
}

// AddChunk appends a chunk.
func (s *Structure) AddChunk(c *chunk.Chunk) {
	s.Chunks = append(s.Chunks, c)
}

// Chunk returns the first chunk with the given name, or nil.
func (s *Structure) Chunk(name string) *chunk.Chunk {
	for _, c := range s.Chunks {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// AddDependency records an external dependency under its import name.
// A name declared twice keeps its first declaration.
func (s *Structure) AddDependency(name string, dep uidl.Dependency) {
	if s.Dependencies == nil {
		s.Dependencies = make(map[string]uidl.Dependency)
	}

	if _, ok := s.Dependencies[name]; !ok {
		s.Dependencies[name] = dep
	}
}

// Plugin is one transform unit of the assembly line.
type Plugin interface {
	// Name identifies the plugin in errors and logs.
	Name() string
	// Run receives the accumulator and returns the updated accumulator.
	// It may block; no other plugin runs meanwhile.
	Run(ctx context.Context, s *Structure) (*Structure, error)
}

type funcPlugin struct {
	name string
	fn   func(context.Context, *Structure) (*Structure, error)
}

func (p funcPlugin) Name() string { return p.name }

func (p funcPlugin) Run(ctx context.Context, s *Structure) (*Structure, error) {
	return p.fn(ctx, s)
}

// Func adapts a function to the Plugin interface.
func Func(name string, fn func(context.Context, *Structure) (*Structure, error)) Plugin {
	return funcPlugin{name: name, fn: fn}
}

// Result is the output of a successful run.
type Result struct {
	Chunks       []*chunk.Chunk
	Dependencies map[string]uidl.Dependency
}

// AssemblyLine runs plugins strictly in registration order.
type AssemblyLine struct {
	mu      sync.RWMutex
	plugins []Plugin
	logger  *slog.Logger
}

// New creates an AssemblyLine with the given plugins.
func New(logger *slog.Logger, plugins ...Plugin) *AssemblyLine {
	if logger == nil {
		logger = slog.Default()
	}

	return &AssemblyLine{plugins: slices.Clone(plugins), logger: logger}
}

// AddPlugin appends a plugin. Runs already in flight are not affected.
func (a *AssemblyLine) AddPlugin(p Plugin) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.plugins = append(a.plugins, p)
}

// Plugins returns a copy of the registered plugins.
func (a *AssemblyLine) Plugins() []Plugin {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.plugins)
}

// Run executes every plugin over the resolved tree. The first failure
// stops the run; no partial result is returned.
func (a *AssemblyLine) Run(ctx context.Context, c *uidl.Component, opts Options) (*Result, error) {
	plugins := a.Plugins()
	if len(plugins) == 0 {
		return nil, &ConfigurationError{
			Msg: "no plugins found, component generation cannot work without any plugins",
		}
	}

	s := &Structure{
		UIDL:         c,
		Options:      opts,
		Dependencies: make(map[string]uidl.Dependency),
	}

	for i, p := range plugins {
		if err := ctx.Err(); err != nil {
			return nil, &PluginError{Plugin: p.Name(), Index: i, Err: err}
		}

		a.logger.Debug("running plugin", "plugin", p.Name(), "index", i, "component", c.Name)

		next, err := p.Run(ctx, s)
		if err != nil {
			return nil, &PluginError{Plugin: p.Name(), Index: i, Err: err}
		}

		if next == nil {
			return nil, &PluginError{Plugin: p.Name(), Index: i, Err: errors.New("plugin returned no structure")}
		}

		s = next
	}

	return &Result{Chunks: s.Chunks, Dependencies: maps.Clone(s.Dependencies)}, nil
}
