// Package fileutil holds the file and directory permission modes greem uses
// when writing generated output.
package fileutil

import "os"

// GeneratedFileMode is the permission mode for emitted schema files, which are
// read by downstream code generators and other users.
const GeneratedFileMode os.FileMode = 0o644

// OutputDirMode is the permission mode for output directories created by greem.
const OutputDirMode os.FileMode = 0o750
