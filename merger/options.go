package merger

import (
	"context"
	"fmt"

	"github.com/erraggy/greem/config"
	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/loader"
	"github.com/erraggy/greem/sdl"
)

// Option is a function that configures a merge operation
type Option func(*mergeConfig) error

// mergeConfig holds configuration for a merge operation
type mergeConfig struct {
	// Input sources, loaded in this order: patterns, file paths, items
	patterns  []string
	filePaths []string
	items     []sdl.Item

	loader *loader.Loader
	logger loader.Logger
}

// MergeWithOptions loads schema files and merges their declarations using
// functional options. Declarations are merged in the order patterns resolve,
// then explicit file paths, then items passed with WithItems.
//
// Files that cannot be read or parsed are skipped and reported in
// MergeResult.SkippedFiles. Providing no input source at all is a
// *gqlerrors.ConfigError; sources that match nothing yield an empty set.
//
// Example:
//
//	result, err := merger.MergeWithOptions(ctx,
//	    merger.WithPatterns("schema/**/*.graphql"),
//	    merger.WithLogger(loader.NewSlogAdapter(slog.Default())),
//	)
func MergeWithOptions(ctx context.Context, opts ...Option) (*MergeResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	var (
		items   []sdl.Item
		files   []string
		skipped []*gqlerrors.ParseError
	)
	if len(cfg.patterns) > 0 || len(cfg.filePaths) > 0 {
		l := cfg.loader
		if l == nil {
			if l, err = loader.New(loader.WithLogger(cfg.logger)); err != nil {
				return nil, fmt.Errorf("merger: %w", err)
			}
		}
		if len(cfg.patterns) > 0 {
			resolved, err := loader.Resolve(cfg.patterns)
			if err != nil {
				return nil, err
			}
			files = resolved
			if len(resolved) == 0 {
				cfg.logger.Warn("schema patterns matched no files", "patterns", cfg.patterns)
			}
		}
		files = appendUnique(files, cfg.filePaths)

		res, err := l.LoadFiles(ctx, files)
		if err != nil {
			return nil, err
		}
		items = res.Items
		skipped = res.Skipped
	}
	items = append(items, cfg.items...)

	result, err := New().Merge(items)
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.ParseErrors = skipped
	for _, pe := range skipped {
		result.SkippedFiles = append(result.SkippedFiles, pe.Path)
	}
	result.Stats.Files = len(files) - len(skipped)
	result.Stats.SkippedFiles = len(skipped)

	cfg.logger.Info("merged schema",
		"files", result.Stats.Files,
		"skipped", result.Stats.SkippedFiles,
		"declarations", result.Stats.Declarations,
		"types", result.Stats.Types,
		"directives", result.Stats.Directives,
	)
	return result, nil
}

func applyOptions(opts ...Option) (*mergeConfig, error) {
	cfg := &mergeConfig{logger: loader.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if len(cfg.patterns) == 0 && len(cfg.filePaths) == 0 && cfg.items == nil {
		return nil, &gqlerrors.ConfigError{
			Option:  "schema",
			Message: "no schema patterns, files or declarations provided",
		}
	}
	return cfg, nil
}

// appendUnique appends the paths not already present in dst.
func appendUnique(dst, paths []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, p := range dst {
		seen[p] = struct{}{}
	}
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		dst = append(dst, p)
	}
	return dst
}

// WithPatterns adds glob patterns (doublestar syntax) selecting schema files.
func WithPatterns(patterns ...string) Option {
	return func(cfg *mergeConfig) error {
		for _, p := range patterns {
			if !loader.ValidatePattern(p) {
				return &gqlerrors.ConfigError{Option: "schema", Value: p, Message: "malformed glob pattern"}
			}
		}
		cfg.patterns = append(cfg.patterns, patterns...)
		return nil
	}
}

// WithFilePaths adds explicit schema files, merged after pattern matches.
func WithFilePaths(paths ...string) Option {
	return func(cfg *mergeConfig) error {
		cfg.filePaths = append(cfg.filePaths, paths...)
		return nil
	}
}

// WithItems adds already parsed declarations, merged after all files.
// Passing no items still counts as an input source.
func WithItems(items ...sdl.Item) Option {
	return func(cfg *mergeConfig) error {
		if cfg.items == nil {
			cfg.items = make([]sdl.Item, 0, len(items))
		}
		cfg.items = append(cfg.items, items...)
		return nil
	}
}

// WithConfig takes the schema patterns from a validated configuration.
func WithConfig(c *config.Config) Option {
	return func(cfg *mergeConfig) error {
		if c == nil {
			return &gqlerrors.ConfigError{Message: "configuration must not be nil"}
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg.patterns = append(cfg.patterns, c.Schema...)
		return nil
	}
}

// WithLoader sets the loader used to read and parse files. By default a new
// loader is created per call.
func WithLoader(l *loader.Loader) Option {
	return func(cfg *mergeConfig) error {
		cfg.loader = l
		return nil
	}
}

// WithLogger sets the logger for loading and the merge summary.
func WithLogger(logger loader.Logger) Option {
	return func(cfg *mergeConfig) error {
		if logger == nil {
			logger = loader.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
