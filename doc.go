// Package greem merges GraphQL schema fragments spread across many files into a
// single schema document.
//
// Every file matched by a set of glob patterns is parsed on its own. Files that
// cannot be read or parsed are skipped with a warning. The remaining top-level
// declarations are then folded, in file order, into one combined set: a type
// declared in one file and extended in another ends up as a single type, and
// declarations that cannot be reconciled stop the merge with a typed error.
//
// # Overview
//
// The library consists of these packages:
//
//   - config: Load and validate the greem.yaml configuration
//   - loader: Resolve glob patterns and parse schema files concurrently
//   - sdl: Declaration model and structural equality over parsed SDL
//   - merger: Fold declarations into a combined set and write the result
//   - gqlerrors: Typed errors for configuration problems and merge conflicts
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/greem
//
// # Quick Start
//
// Merge every schema file below a directory:
//
//	import "github.com/erraggy/greem/merger"
//
//	result, err := merger.MergeWithOptions(ctx, merger.WithPatterns("schema/**/*.graphql"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Types: %d\n", result.Stats.Types)
//
//	path, err := merger.WriteResult(result, "./__generated__")
//
// Merge using a configuration file:
//
//	import "github.com/erraggy/greem/config"
//
//	cfg, err := config.Load("greem.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := merger.MergeWithOptions(ctx, merger.WithConfig(cfg))
//
// # Merge Rules
//
// Declarations are keyed by name. The first occurrence of a name seeds its
// entry and later occurrences of the same kind are merged into it:
//
//   - Object, interface and input object fields are unioned by name
//   - Union members and implemented interfaces are unioned
//   - Enum values are unioned by name
//   - Directive usages are unioned; identical usages are kept once
//   - Different descriptions are joined, identical ones kept once
//   - Extensions merge like declarations of their kind
//
// A same-named sub-entity is only accepted when it is structurally identical to
// the one already present. Anything else is a conflict.
//
// # Conflicts
//
// The first conflict aborts the merge and is returned as one of:
//
//   - *gqlerrors.DuplicateDefinitionError: a second schema, scalar or directive
//     declaration, or a field or enum value repeated within one declaration
//   - *gqlerrors.NameCollisionError: same-named declarations of different kinds,
//     or same-named members with different content
//
// Use gqlerrors.IsConflict to tell conflicts apart from configuration errors:
//
//	if gqlerrors.IsConflict(err) {
//		fmt.Printf("conflict (%s): %v\n", gqlerrors.Category(err), err)
//	}
//
// # Command Line
//
// The greem command wraps the library:
//
//	greem merge [-c greem.yaml] [-o dir] [pattern...]
//	greem check [pattern...]
//	greem mcp
//
// See the merger package documentation for more details.
package greem
