// Package pathutil validates output locations before greem writes to them.
//
// [SanitizeOutputDir] cleans a user-supplied output directory and rejects
// values that cannot name a directory: empty strings, NUL bytes, symlinks and
// existing non-directories. [SanitizeOutputPath] applies the symlink check to
// a single output file:
//
//	dir, err := pathutil.SanitizeOutputDir(cfg.OutputDirectory)
//	if err != nil {
//	    return err
//	}
//	target, err := pathutil.SanitizeOutputPath(filepath.Join(dir, "schema.graphql"))
package pathutil
