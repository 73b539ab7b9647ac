// Package cli implements the command-line interface for repopack.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/user/repopack/internal/config"
	"github.com/user/repopack/internal/format"
	"github.com/user/repopack/internal/pack"
	"github.com/user/repopack/internal/ui"
)

var (
	// Version information set at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	cfgFile string
	debug   bool

	// Packaging flags
	flagOutput      string
	flagInclude     string
	flagExclude     string
	flagFormat      string
	flagMaxFileSize int64
	flagTokens      bool
	flagRecent      bool
	flagLineNumbers bool
	flagPreview     int
	flagNoGitignore bool
)

// SetVersionInfo sets the version information from build flags.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "repopack [paths...]",
	Short: "Package repository contents into an LLM-readable document",
	Long: `repopack converts one or more local directories, files, or remote git
repositories into a single document: directory tree, file contents, git
provenance, and summary statistics, as Markdown, JSON, or YAML.

The document goes to stdout (or a file with -o); every warning goes to
stderr, so the output is always safe to pipe.

Examples:
  # Package the current directory as Markdown
  repopack

  # Package only Go and Markdown sources, write to a file
  repopack --include "*.go,*.md" -o context.md ./myproject

  # Package two trees into one JSON document with a token estimate
  repopack --format json --tokens ./api ./web

  # Only files changed in the last week, 30 lines each
  repopack --recent --preview 30

  # Package a remote repository
  repopack https://github.com/user/project.git`,
	Args: cobra.ArbitraryArgs,
	RunE: runPack,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			ui.SetDebug(true)
			log.Debug("Debug logging enabled")
		}

		if err := config.Load(cfgFile); err != nil {
			log.Warn("Failed to load config", "error", err)
		}

		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	ui.InitLogger()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.repopack.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write the document to a file instead of stdout")
	rootCmd.Flags().StringVar(&flagInclude, "include", "", "only include files matching these patterns (e.g. \"*.go,*.md\")")
	rootCmd.Flags().StringVar(&flagExclude, "exclude", "", "exclude files matching these patterns")
	rootCmd.Flags().StringVar(&flagFormat, "format", config.DefaultFormat, "output format: markdown, json, or yaml")
	rootCmd.Flags().Int64Var(&flagMaxFileSize, "max-file-size", config.DefaultMaxFileSize, "per-file content limit in bytes")
	rootCmd.Flags().BoolVar(&flagTokens, "tokens", false, "append a token estimate to the document")
	rootCmd.Flags().BoolVar(&flagRecent, "recent", false, "only include files modified in the last 7 days")
	rootCmd.Flags().BoolVar(&flagLineNumbers, "line-numbers", false, "prefix content lines with line numbers")
	rootCmd.Flags().IntVar(&flagPreview, "preview", 0, "limit each file to the first N lines")
	rootCmd.Flags().BoolVar(&flagNoGitignore, "no-gitignore", false, "do not honor .gitignore files")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("repopack %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func runPack(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	// Explicit flags beat the config file; the config file fills in the
	// options left at their defaults.
	output := cfg.Output
	if cmd.Flags().Changed("output") {
		output = flagOutput
	}
	include := cfg.Include
	if cmd.Flags().Changed("include") {
		include = splitPatterns(flagInclude)
	}
	exclude := cfg.Exclude
	if cmd.Flags().Changed("exclude") {
		exclude = splitPatterns(flagExclude)
	}
	formatName := cfg.Format
	if cmd.Flags().Changed("format") {
		formatName = flagFormat
	}
	maxFileSize := cfg.MaxFileSize
	if cmd.Flags().Changed("max-file-size") {
		maxFileSize = flagMaxFileSize
	}
	showTokens := cfg.Tokens || flagTokens
	recent := cfg.Recent || flagRecent
	lineNumbers := cfg.LineNumbers || flagLineNumbers
	preview := cfg.Preview
	if cmd.Flags().Changed("preview") {
		preview = flagPreview
	}
	useGitignore := cfg.UseGitignore
	if flagNoGitignore {
		useGitignore = false
	}

	outFormat, err := format.ParseFormat(formatName)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	results := pack.ProcessPaths(paths, pack.Options{
		MaxFileSize:       maxFileSize,
		IncludePatterns:   include,
		ExcludePatterns:   exclude,
		UseIgnoreRules:    useGitignore,
		Recent:            recent,
		RecencyWindowDays: config.DefaultRecencyDays,
		LineNumbers:       lineNumbers,
		PreviewLines:      preview,
	})
	if len(results) == 0 {
		return fmt.Errorf("no results to output")
	}

	doc, err := format.Render(pack.Combine(results), outFormat, format.RenderOptions{
		ShowTokens: showTokens,
		Recent:     recent,
	})
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintln(os.Stderr, ui.FormatWritten(output))
	} else {
		fmt.Print(doc)
		if !strings.HasSuffix(doc, "\n") {
			fmt.Println()
		}
	}

	totalFiles := 0
	for _, r := range results {
		totalFiles += r.Summary.TotalFiles
	}
	fmt.Fprintln(os.Stderr, ui.FormatSummary(len(results), totalFiles))

	return nil
}

// splitPatterns parses a comma-separated pattern list, dropping empty
// entries.
func splitPatterns(s string) []string {
	if s == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
