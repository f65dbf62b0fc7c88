package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned for an empty or whitespace-only path.
var ErrEmptyPath = errors.New("pathutil: path is empty")

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	if err := checkSyntax(path); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("pathutil: output file is a directory: %s", abs)
		}
	case os.IsNotExist(err):
		// New file.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}

// SanitizeOutputDir validates and cleans an output directory path. The
// directory does not have to exist yet, but if it does it must be a real
// directory, not a symlink or a file. Returns the cleaned absolute path.
func SanitizeOutputDir(dir string) (string, error) {
	if err := checkSyntax(dir); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write into symlink: %s", abs)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("pathutil: not a directory: %s", abs)
		}
	case os.IsNotExist(err):
		// Created on write.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}

func checkSyntax(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("pathutil: path contains NUL byte")
	}
	return nil
}
