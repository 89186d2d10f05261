package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"uidl-generator/internal/generator"
	"uidl-generator/internal/mapping"
	"uidl-generator/internal/plugins"
	"uidl-generator/internal/postprocess"
	"uidl-generator/internal/project"
	"uidl-generator/internal/resolve"
	"uidl-generator/internal/uidl"
)

var componentCmd = &cobra.Command{
	Use:   "component [uidl.json]",
	Short: "Compile a component document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading component: %w", err)
		}

		gen, err := newComponentGenerator(postprocess.Sanitize(nil))
		if err != nil {
			return err
		}

		out, err := gen.GenerateComponentJSON(cmd.Context(), data, generatorOptions())
		if err != nil {
			return err
		}

		if outputDir == "" {
			return printJSON(cmd, out)
		}

		if err := generator.WriteFiles(outputDir, out.Files); err != nil {
			return err
		}

		slog.Info("files written", "dir", outputDir, "files", len(out.Files))

		return nil
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [project.json]",
	Short: "Compile a project and merge its pages into the shell document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading project: %w", err)
		}

		// Page head tags must survive sanitizing until the merge lifts them.
		gen, err := newComponentGenerator(postprocess.Sanitize(postprocess.PagePolicy()))
		if err != nil {
			return err
		}

		pg := &project.Generator{
			Components: gen,
			Options:    generatorOptions(),
			Logger:     slog.Default(),
		}

		files, err := pg.GenerateJSON(cmd.Context(), data)
		if err != nil {
			return err
		}

		if outputDir == "" {
			return printJSON(cmd, files)
		}

		return files.WriteTo(outputDir)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [uidl.json]",
	Short: "Report schema problems and content diagnostics of a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading component: %w", err)
		}

		doc, err := uidl.Decode(data)
		if err != nil {
			return err
		}

		if res := uidl.NewValidator().ValidateComponentSchema(doc); !res.Valid {
			return &uidl.ValidationError{Stage: uidl.StageSchema, Msg: res.ErrorMsg}
		}

		c, err := uidl.ParseComponentJSON(doc)
		if err != nil {
			return err
		}

		diags := uidl.CheckContent(c)
		for _, d := range diags.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Severity, d)
		}

		return diags.Error()
	},
}

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Print the built-in HTML mapping table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if outputDir != "" {
			return mapping.WriteFile(mapping.HTML(), filepath.Join(outputDir, "html.yaml"))
		}

		data, err := mapping.Marshal(mapping.HTML())
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

func init() {
	rootCmd.AddCommand(componentCmd, projectCmd, checkCmd, mappingCmd)
}

// newComponentGenerator builds the generator from the flags. sanitizer is
// used when --sanitize is set.
func newComponentGenerator(sanitizer postprocess.Processor) (*generator.Generator, error) {
	var tables []*mapping.Table

	for _, path := range mappingPaths {
		t, err := mapping.LoadFile(path)
		if err != nil {
			return nil, err
		}

		tables = append(tables, t)
	}

	var post []postprocess.Processor
	if sanitize {
		post = append(post, sanitizer)
	}

	if pretty {
		post = append(post, postprocess.Prettier(nil))
	}

	if banner != "" {
		post = append(post, postprocess.Banner(banner))
	}

	return generator.New(generator.Params{
		Mappings:       tables,
		Plugins:        plugins.Defaults(),
		PostProcessors: post,
		Logger:         slog.Default(),
	}), nil
}

func generatorOptions() generator.Options {
	return generator.Options{
		SkipValidation: skipValidation,
		Resolve: resolve.Options{
			AssetsPrefix:            assetsPrefix,
			LocalDependenciesPrefix: localPrefix,
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
