// Package sdl models the top-level declarations of GraphQL schema documents
// as consumed by the merger.
//
// Documents are parsed with github.com/vektah/gqlparser/v2; each declaration
// variant embeds the corresponding gqlparser AST node so the parsed content is
// used as-is. The Declaration interface is sealed: consumers dispatch with a
// type switch over the five variants and, for types and type extensions, a
// switch over ast.DefinitionKind.
//
// # Equality
//
// The merger decides between "deduplicate" and "conflict" with the Equal*
// functions in this package. They compare everything except source positions
// and comments, so the same field written in two files at different offsets
// is equal, while any difference in type, arguments, default values,
// directives or description is not.
//
// # Source Order
//
// FromDocument restores the in-file order of declarations, which the merger
// relies on for first-occurrence semantics.
package sdl
