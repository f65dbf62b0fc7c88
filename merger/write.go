package merger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/greem/internal/fileutil"
	"github.com/erraggy/greem/internal/pathutil"
	"github.com/vektah/gqlparser/v2/formatter"
)

// OutputFileName is the name of the merged schema file written by WriteResult.
const OutputFileName = "schema.graphql"

// Format renders a combined set as SDL using the gqlparser formatter.
func Format(set *CombinedSet) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(set.Document())
	return buf.String()
}

// WriteResult writes the merged schema to OutputFileName inside dir, creating
// dir when needed, and returns the path written.
//
// The file is written with mode 0644 so downstream generators can read it. If
// the file already exists, its permissions are explicitly reset after writing.
func WriteResult(result *MergeResult, dir string) (string, error) {
	if result == nil || result.Set == nil {
		return "", fmt.Errorf("merger: nothing to write")
	}
	absDir, err := pathutil.SanitizeOutputDir(dir)
	if err != nil {
		return "", fmt.Errorf("merger: invalid output directory: %w", err)
	}
	if err := os.MkdirAll(absDir, fileutil.OutputDirMode); err != nil {
		return "", fmt.Errorf("merger: failed to create output directory: %w", err)
	}
	target, err := pathutil.SanitizeOutputPath(filepath.Join(absDir, OutputFileName))
	if err != nil {
		return "", fmt.Errorf("merger: invalid output file: %w", err)
	}

	if err := os.WriteFile(target, []byte(Format(result.Set)), fileutil.GeneratedFileMode); err != nil {
		return "", fmt.Errorf("merger: failed to write output file: %w", err)
	}
	if err := os.Chmod(target, fileutil.GeneratedFileMode); err != nil {
		return "", fmt.Errorf("merger: failed to set output file permissions: %w", err)
	}
	return target, nil
}
