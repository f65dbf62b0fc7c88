// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/greem/sdl"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// UserSchemaFiles is a small schema split across three files the way users
// typically author it: root types, one domain type, and a shared scalar.
var UserSchemaFiles = map[string]string{
	"schema/root.graphql": `schema { query: Query }

type Query {
  user(id: ID!): User
}
`,
	"schema/user/user.graphql": `"A registered account"
type User {
  id: ID!
  name: String
}

extend type Query {
  users: [User!]!
}
`,
	"schema/scalars.graphql": `scalar DateTime
`,
}

// ParseDeclarations parses one SDL document and returns its declarations in
// source order. It fails the test on a syntax error.
func ParseDeclarations(t *testing.T, name, input string) []sdl.Declaration {
	t.Helper()

	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", name, err)
	}
	return sdl.FromDocument(doc)
}

// Items parses each document as a separate file named file1.graphql,
// file2.graphql, ... and concatenates the declarations in argument order.
func Items(t *testing.T, docs ...string) []sdl.Item {
	t.Helper()

	var items []sdl.Item
	for i, input := range docs {
		name := fmt.Sprintf("file%d.graphql", i+1)
		for _, d := range ParseDeclarations(t, name, input) {
			items = append(items, sdl.Item{File: name, Declaration: d})
		}
	}
	return items
}

// WriteSchemaFiles writes files (relative path to content) below a fresh
// temporary directory and returns the directory.
// The files are automatically cleaned up when the test completes (via t.TempDir).
func WriteSchemaFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("Failed to write schema file %s: %v", rel, err)
		}
	}
	return dir
}

// WriteTempYAML marshals v to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, v any) string {
	t.Helper()

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "greem.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}
