package commands

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/erraggy/greem"
	"github.com/erraggy/greem/config"
	"github.com/erraggy/greem/internal/cliutil"
	"github.com/erraggy/greem/loader"
	"github.com/erraggy/greem/merger"
	"github.com/erraggy/greem/sdl"
)

// MergeFlags contains flags for the merge and check commands
type MergeFlags struct {
	Config      string
	Output      string
	Format      string
	Concurrency int
	Quiet       bool
	Verbose     bool
}

// SkippedFile describes a file left out of the merge.
type SkippedFile struct {
	Path    string `json:"path" yaml:"path"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// MergeSummary is the structured output of the merge and check commands.
type MergeSummary struct {
	Version      string        `json:"version" yaml:"version"`
	Output       string        `json:"output,omitempty" yaml:"output,omitempty"`
	Files        []string      `json:"files" yaml:"files"`
	SkippedFiles []SkippedFile `json:"skippedFiles,omitempty" yaml:"skippedFiles,omitempty"`
	Stats        merger.Stats  `json:"stats" yaml:"stats"`
}

// SetupMergeFlags creates and configures a FlagSet for the merge or check
// command. Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags(name string) (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Config, "c", "", "configuration file (default: "+config.DefaultFileName+" if present)")
	fs.StringVar(&flags.Config, "config", "", "configuration file (default: "+config.DefaultFileName+" if present)")
	if name == "merge" {
		fs.StringVar(&flags.Output, "o", "", "output directory (overrides output_directory)")
		fs.StringVar(&flags.Output, "output", "", "output directory (overrides output_directory)")
	}
	fs.StringVar(&flags.Format, "format", FormatText, "summary format: text, json, or yaml")
	fs.IntVar(&flags.Concurrency, "concurrency", 0, "maximum files parsed at once (default: GOMAXPROCS)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report errors")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report errors")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose mode: log every parsed file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "verbose mode: log every parsed file")

	fs.Usage = func() {
		if name == "merge" {
			cliutil.Writef(fs.Output(), "Usage: greem merge [flags] [pattern...]\n\n")
			cliutil.Writef(fs.Output(), "Merge GraphQL schema fragments into %s in the output directory.\n\n", merger.OutputFileName)
		} else {
			cliutil.Writef(fs.Output(), "Usage: greem check [flags] [pattern...]\n\n")
			cliutil.Writef(fs.Output(), "Merge GraphQL schema fragments and report conflicts without writing output.\n\n")
		}
		cliutil.Writef(fs.Output(), "Patterns use doublestar syntax and replace the schema list of the\n")
		cliutil.Writef(fs.Output(), "configuration file when given.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  greem %s\n", name)
		cliutil.Writef(fs.Output(), "  greem %s -c greem.yaml\n", name)
		cliutil.Writef(fs.Output(), "  greem %s 'schema/**/*.graphql'\n", name)
		cliutil.Writef(fs.Output(), "  greem %s --format json 'schema/**/*.graphql'\n", name)
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Files that cannot be parsed are skipped with a warning\n")
		cliutil.Writef(fs.Output(), "  - The first conflict aborts the merge with exit status 1\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runMerge(ctx, "merge", args, os.Stdout, os.Stderr)
}

// HandleCheck executes the check command
func HandleCheck(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runMerge(ctx, "check", args, os.Stdout, os.Stderr)
}

func runMerge(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupMergeFlags(name)
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, fs.Args())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := loader.NewSlogAdapter(NewLogger(stderr, flags.Verbose, flags.Quiet))
	l, err := loader.New(loader.WithLogger(logger), loader.WithConcurrency(flags.Concurrency))
	if err != nil {
		return err
	}

	startTime := time.Now()
	result, err := merger.MergeWithOptions(ctx,
		merger.WithConfig(cfg),
		merger.WithLoader(l),
		merger.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	totalTime := time.Since(startTime)

	summary := newSummary(result)
	if name == "merge" {
		path, err := merger.WriteResult(result, cfg.OutputDirectory)
		if err != nil {
			return err
		}
		summary.Output = path
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, summary, flags.Format)
	}
	if !flags.Quiet {
		writeTextSummary(stderr, name, summary, totalTime)
	}
	return nil
}

// resolveConfig loads the configuration file, if any, and applies command
// line overrides. The result is not validated.
func resolveConfig(flags *MergeFlags, patterns []string) (*config.Config, error) {
	cfg := config.Default()
	switch {
	case flags.Config != "":
		loaded, err := config.Load(flags.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			loaded, err := config.Load(config.DefaultFileName)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		}
	}
	if len(patterns) > 0 {
		cfg.Schema = patterns
	}
	if flags.Output != "" {
		cfg.OutputDirectory = flags.Output
	}
	return cfg, nil
}

func newSummary(result *merger.MergeResult) *MergeSummary {
	summary := &MergeSummary{
		Version: greem.Version(),
		Files:   result.Files,
		Stats:   result.Stats,
	}
	if summary.Files == nil {
		summary.Files = []string{}
	}
	for _, pe := range result.ParseErrors {
		summary.SkippedFiles = append(summary.SkippedFiles, SkippedFile{
			Path:    pe.Path,
			Line:    pe.Line,
			Column:  pe.Column,
			Message: cmp.Or(pe.Message, fmt.Sprint(pe.Cause)),
		})
	}
	return summary
}

func writeTextSummary(w io.Writer, name string, s *MergeSummary, totalTime time.Duration) {
	cliutil.Heading(w, "GraphQL Schema Merger")
	cliutil.Writef(w, "greem version: %s\n", s.Version)
	cliutil.Writef(w, "Files: %d (%d skipped)\n", len(s.Files), s.Stats.SkippedFiles)
	cliutil.Writef(w, "Declarations: %d\n", s.Stats.Declarations)
	cliutil.Writef(w, "Types: %d\n", s.Stats.Types)
	kinds := slices.Sorted(maps.Keys(s.Stats.Kinds))
	for _, kind := range kinds {
		cliutil.Writef(w, "  %s: %d\n", sdl.KindLabel(kind), s.Stats.Kinds[kind])
	}
	cliutil.Writef(w, "Directives: %d\n", s.Stats.Directives)
	cliutil.Writef(w, "Schema: %s\n", cliutil.YesNo(s.Stats.HasSchema))
	cliutil.Writef(w, "Total Time: %v\n\n", totalTime)

	if len(s.SkippedFiles) > 0 {
		cliutil.Writef(w, "Skipped files (%d):\n", len(s.SkippedFiles))
		for _, f := range s.SkippedFiles {
			if f.Line > 0 {
				cliutil.Writef(w, "  - %s:%d:%d: %s\n", f.Path, f.Line, f.Column, f.Message)
			} else {
				cliutil.Writef(w, "  - %s: %s\n", f.Path, f.Message)
			}
		}
		cliutil.Writef(w, "\n")
	}

	if name == "merge" {
		cliutil.Writef(w, "✓ Merge completed successfully!\n")
		cliutil.Writef(w, "\nOutput written to: %s\n", s.Output)
	} else {
		cliutil.Writef(w, "✓ No conflicts found\n")
	}
}
