// Package main provides the CLI entrypoint for uidl-generator.
//
// uidl-generator compiles UIDL documents into HTML and CSS:
//   - component: compiles one component document into its files
//   - project: compiles every page of a project and merges it into the shell
//   - check: reports diagnostics of a component document
//   - mapping: prints the built-in element mapping table as YAML
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	mappingPaths   []string
	outputDir      string
	skipValidation bool
	assetsPrefix   string
	localPrefix    string
	pretty         bool
	sanitize       bool
	banner         string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:           "uidl-generator",
	Short:         "Compile UIDL documents into HTML and CSS",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		lvl := slog.LevelInfo
		if verbose {
			lvl = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringSliceVarP(&mappingPaths, "mapping", "m", nil, "YAML mapping tables layered over the built-in HTML table")
	flags.StringVarP(&outputDir, "out", "o", "", "write files to this directory instead of printing JSON")
	flags.BoolVar(&skipValidation, "skip-validation", false, "skip schema validation")
	flags.StringVar(&assetsPrefix, "assets-prefix", "", "prefix for root-relative asset URLs")
	flags.StringVar(&localPrefix, "local-prefix", "", "prefix for local dependency paths")
	flags.BoolVar(&pretty, "pretty", true, "pretty-print generated files")
	flags.BoolVar(&sanitize, "sanitize", false, "sanitize generated markup, keeping page title and meta tags in projects")
	flags.StringVar(&banner, "banner", "", "comment banner prepended to every file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
