// Package generator wires the component compilation stages together:
// validation, resolution, the plugin assembly line, chunk linking,
// post-processing and file bundling.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/mapping"
	"uidl-generator/internal/match"
	"uidl-generator/internal/pipeline"
	"uidl-generator/internal/postprocess"
	"uidl-generator/internal/resolve"
	"uidl-generator/internal/uidl"
)

// Validator checks documents before compilation. A failing result aborts
// the call with the result's message.
type Validator interface {
	ValidateComponentSchema(doc map[string]any) uidl.Result
	ValidateComponentContent(c *uidl.Component) uidl.Result
}

// Params configures a Generator.
type Params struct {
	// Mappings are override tables layered over the HTML base table in order.
	Mappings []*mapping.Table
	// Plugins run in order over every resolved component.
	Plugins []pipeline.Plugin
	// PostProcessors run in order over the linked files.
	PostProcessors []postprocess.Processor
	// Validator defaults to uidl.NewValidator().
	Validator Validator
	Logger    *slog.Logger
}

// Options are per-call settings.
type Options struct {
	// SkipValidation bypasses schema validation. Content validation always runs.
	SkipValidation bool
	// Resolve is passed through to the resolver unchanged.
	Resolve resolve.Options
	// Extra is handed to every plugin.
	Extra map[string]any
}

// File is one generated output file.
type File struct {
	Name     string         `json:"name"`
	FileType chunk.FileType `json:"fileType"`
	Content  string         `json:"content"`
}

// CompiledComponent is the output of one compilation call.
type CompiledComponent struct {
	Files        []File                     `json:"files"`
	Dependencies map[string]uidl.Dependency `json:"dependencies,omitempty"`
}

// Generator compiles UIDL components. Configuration calls (AddMapping,
// AddPlugin, AddPostProcessor) must not race with compilation calls.
type Generator struct {
	resolver  *resolve.Resolver
	line      *pipeline.AssemblyLine
	validator Validator
	logger    *slog.Logger

	mu   sync.RWMutex
	post postprocess.Chain
}

// New creates a Generator from params.
func New(params Params) *Generator {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	validator := params.Validator
	if validator == nil {
		validator = uidl.NewValidator()
	}

	return &Generator{
		resolver:  resolve.New(params.Mappings...),
		line:      pipeline.New(logger, params.Plugins...),
		validator: validator,
		logger:    logger,
		post:      slices.Clone(postprocess.Chain(params.PostProcessors)),
	}
}

// AddMapping layers a mapping table over all existing tables.
func (g *Generator) AddMapping(t *mapping.Table) {
	g.resolver.AddMapping(t)
}

// AddPlugin appends a plugin to the assembly line.
func (g *Generator) AddPlugin(p pipeline.Plugin) {
	g.line.AddPlugin(p)
}

// AddPostProcessor appends a post-processor.
func (g *Generator) AddPostProcessor(p postprocess.Processor) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.post = append(g.post, p)
}

// ResolveElement resolves a single node against the current mapping layers.
func (g *Generator) ResolveElement(n *uidl.Node, opts resolve.Options) (*uidl.Node, error) {
	return g.resolver.ResolveElement(n, opts)
}

// GenerateComponentJSON decodes raw JSON and compiles it.
func (g *Generator) GenerateComponentJSON(ctx context.Context, data []byte, opts Options) (*CompiledComponent, error) {
	doc, err := uidl.Decode(data)
	if err != nil {
		return nil, err
	}

	return g.GenerateComponent(ctx, doc, opts)
}

// GenerateComponent validates, parses and compiles a UIDL document.
func (g *Generator) GenerateComponent(ctx context.Context, doc map[string]any, opts Options) (*CompiledComponent, error) {
	if err := g.checkPlugins(); err != nil {
		return nil, err
	}

	if !opts.SkipValidation {
		if res := g.validator.ValidateComponentSchema(doc); !res.Valid {
			return nil, &uidl.ValidationError{Stage: uidl.StageSchema, Msg: res.ErrorMsg}
		}
	}

	c, err := uidl.ParseComponentJSON(doc)
	if err != nil {
		return nil, err
	}

	return g.GenerateUIDL(ctx, c, opts)
}

// GenerateUIDL compiles an already parsed component. Schema validation
// does not apply; content validation does.
func (g *Generator) GenerateUIDL(ctx context.Context, c *uidl.Component, opts Options) (*CompiledComponent, error) {
	if err := g.checkPlugins(); err != nil {
		return nil, err
	}

	if res := g.validator.ValidateComponentContent(c); !res.Valid {
		return nil, &uidl.ValidationError{Stage: uidl.StageContent, Msg: res.ErrorMsg}
	}

	resolved, err := g.resolver.ResolveUIDL(c.Clone(), opts.Resolve)
	if err != nil {
		return nil, err
	}

	result, err := g.line.Run(ctx, resolved, pipeline.Options{Resolve: opts.Resolve, Extra: opts.Extra})
	if err != nil {
		return nil, err
	}

	files, err := g.LinkCodeChunks(result.Chunks, c.FileName())
	if err != nil {
		return nil, err
	}

	g.logger.Debug("component generated", "component", c.Name, "files", len(files))

	return &CompiledComponent{Files: files, Dependencies: result.Dependencies}, nil
}

// LinkCodeChunks links chunks per file type, runs the post-processors and
// bundles the results into files named after fileName.
func (g *Generator) LinkCodeChunks(chunks []*chunk.Chunk, fileName string) ([]File, error) {
	var kinds []chunk.FileType

	linked := make(postprocess.Files)

	for _, group := range chunk.GroupByFileType(chunks) {
		code, err := chunk.Link(group.Chunks)
		if err != nil {
			return nil, err
		}

		kinds = append(kinds, group.FileType)
		linked[group.FileType] = code
	}

	g.mu.RLock()
	post := slices.Clone(g.post)
	g.mu.RUnlock()

	processed, err := post.Apply(linked)
	if err != nil {
		return nil, err
	}

	return bundle(processed, kinds, fileName), nil
}

func (g *Generator) checkPlugins() error {
	if len(g.line.Plugins()) == 0 {
		return &pipeline.ConfigurationError{
			Msg: "no plugins found, component generation cannot work without any plugins",
		}
	}

	return nil
}

// bundle turns the file type map into files named after the dash-cased
// fileName. Linked kinds keep chunk order; kinds added by post-processors
// follow in sorted order.
func bundle(files postprocess.Files, kinds []chunk.FileType, fileName string) []File {
	name := match.DashCase(fileName)
	out := make([]File, 0, len(files))

	for _, kind := range kinds {
		content, ok := files[kind]
		if !ok {
			continue
		}

		out = append(out, File{Name: name, FileType: kind, Content: content})
	}

	var extra []chunk.FileType

	for kind := range files {
		if !slices.Contains(kinds, kind) {
			extra = append(extra, kind)
		}
	}

	slices.Sort(extra)

	for _, kind := range extra {
		out = append(out, File{Name: name, FileType: kind, Content: files[kind]})
	}

	return out
}

// String returns the file name with its extension.
func (f File) String() string {
	if f.FileType == "" {
		return f.Name
	}

	return fmt.Sprintf("%s.%s", f.Name, f.FileType)
}
