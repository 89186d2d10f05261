package project

import (
	"context"
	"fmt"
	"log/slog"

	"uidl-generator/internal/chunk"
	"uidl-generator/internal/generator"
	"uidl-generator/internal/match"
	"uidl-generator/internal/plugins"
	"uidl-generator/internal/uidl"
)

// StyleKey is the file map key of the project stylesheet.
const StyleKey = "style"

// Structure is the state project plugins operate on.
type Structure struct {
	Project      *uidl.Project
	Files        FileMap
	Dependencies map[string]uidl.Dependency
}

// Plugin hooks into project generation. RunBefore sees the shell entry
// only; RunAfter sees every compiled page.
type Plugin interface {
	RunBefore(ctx context.Context, s *Structure) error
	RunAfter(ctx context.Context, s *Structure) error
}

// Generator compiles every page of a project and merges them into the shell.
type Generator struct {
	// Components compiles the pages.
	Components *generator.Generator
	// Plugins default to CloneGlobals alone.
	Plugins []Plugin
	// Shell defaults to BuildShell.
	Shell ShellBuilder
	// Options are used for every page.
	Options generator.Options
	Logger  *slog.Logger
}

// GenerateJSON decodes and compiles a project document.
func (g *Generator) GenerateJSON(ctx context.Context, data []byte) (FileMap, error) {
	doc, err := uidl.Decode(data)
	if err != nil {
		return nil, err
	}

	p, err := uidl.ParseProjectJSON(doc)
	if err != nil {
		return nil, err
	}

	return g.Generate(ctx, p)
}

// Generate compiles the project into a file map without the shell entry.
func (g *Generator) Generate(ctx context.Context, p *uidl.Project) (FileMap, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	projectPlugins := g.Plugins
	if projectPlugins == nil {
		projectPlugins = []Plugin{CloneGlobals{}}
	}

	build := g.Shell
	if build == nil {
		build = BuildShell
	}

	shell, err := build(p.Globals)
	if err != nil {
		return nil, fmt.Errorf("building shell: %w", err)
	}

	s := &Structure{
		Project: p,
		Files: FileMap{
			EntryKey: {
				Path:  []string{""},
				Files: []generator.File{{Name: "index", FileType: chunk.FileTypeHTML, Content: shell}},
			},
		},
		Dependencies: make(map[string]uidl.Dependency),
	}

	for _, plugin := range projectPlugins {
		if err := plugin.RunBefore(ctx, s); err != nil {
			return nil, err
		}
	}

	for _, page := range p.Pages {
		if err := g.addPage(ctx, s, page); err != nil {
			return nil, err
		}
	}

	if len(p.StyleSetDefinitions) > 0 {
		if _, taken := s.Files[StyleKey]; taken {
			return nil, fmt.Errorf("page file name %q collides with the project stylesheet", StyleKey)
		}

		s.Files[StyleKey] = &Folder{
			Path: []string{""},
			Files: []generator.File{{
				Name:     StyleKey,
				FileType: chunk.FileTypeCSS,
				Content:  plugins.StyleSetRules(p.StyleSetDefinitions).String(),
			}},
		}
	}

	for _, plugin := range projectPlugins {
		if err := plugin.RunAfter(ctx, s); err != nil {
			return nil, err
		}
	}

	logger.Info("project generated", "project", p.Name, "pages", len(p.Pages))

	return s.Files, nil
}

func (g *Generator) addPage(ctx context.Context, s *Structure, page *uidl.Component) error {
	if page == nil {
		return fmt.Errorf("project %q has an empty page", s.Project.Name)
	}

	key := match.DashCase(page.FileName())
	if _, taken := s.Files[key]; taken || key == EntryKey {
		return fmt.Errorf("page %q: file name %q is already used", page.Name, key)
	}

	compiled, err := g.Components.GenerateUIDL(ctx, page, g.Options)
	if err != nil {
		return fmt.Errorf("page %q: %w", page.Name, err)
	}

	s.Files[key] = &Folder{Path: []string{""}, Files: compiled.Files}

	for name, dep := range compiled.Dependencies {
		if _, ok := s.Dependencies[name]; !ok {
			s.Dependencies[name] = dep
		}
	}

	return nil
}
