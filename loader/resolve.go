package loader

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/erraggy/greem/gqlerrors"
)

// Resolve expands glob patterns into a list of regular files.
//
// Matches of each pattern are sorted lexically and patterns contribute in the
// order given. A file matched by several patterns is listed once, at its first
// position. A malformed pattern is a *gqlerrors.ConfigError; a pattern that
// matches nothing is not an error.
func Resolve(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		if !ValidatePattern(pattern) {
			return nil, &gqlerrors.ConfigError{
				Option:  "schema",
				Value:   pattern,
				Message: "malformed glob pattern",
				Cause:   doublestar.ErrBadPattern,
			}
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, &gqlerrors.ConfigError{
				Option:  "schema",
				Value:   pattern,
				Message: "malformed glob pattern",
				Cause:   err,
			}
		}
		slices.Sort(matches)
		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, fmt.Errorf("loader: cannot resolve absolute path of %s: %w", match, err)
			}
			if _, dup := seen[abs]; dup {
				continue
			}
			seen[abs] = struct{}{}
			files = append(files, match)
		}
	}
	return files, nil
}

// ValidatePattern reports whether pattern is a well-formed glob pattern.
func ValidatePattern(pattern string) bool {
	return doublestar.ValidatePathPattern(filepath.FromSlash(pattern))
}
