// Package merger combines GraphQL schema fragments into one schema.
//
// The input is an ordered sequence of declarations, typically produced by
// the loader package from files matching glob patterns. Declarations are
// folded left to right into a [CombinedSet]; the first occurrence of a name
// seeds its entry and defines which side is "existing" in every later merge.
//
// # Merge Rules
//
//   - A schema may be declared once. `extend schema` blocks merge into it.
//   - Scalars may be declared once. `extend scalar` only adds directives.
//   - Directive definitions may be declared once.
//   - Objects, interfaces, unions, enums and input objects with the same name
//     merge member by member: fields, enum values and directive usages by
//     name, implemented interfaces and union members by set union.
//   - A member present on both sides must be identical apart from source
//     positions, otherwise the names collide with reason "different content".
//   - The same name used for two different kinds of type collides with reason
//     "different kind".
//   - Descriptions are concatenated, existing first, joined by a newline.
//
// Type extensions follow the same rules as declarations of their kind. An
// extension of a type that has not been declared yet seeds the entry; the
// later declaration merges into it.
//
// Merging is fail-fast: the first conflict is returned as a
// *gqlerrors.DuplicateDefinitionError or *gqlerrors.NameCollisionError and no
// partial result is exposed.
//
// # Usage
//
//	result, err := merger.MergeWithOptions(ctx, merger.WithPatterns("schema/**/*.graphql"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := merger.WriteResult(result, "./__generated__")
//
// For declarations that are already parsed, use the core API directly:
//
//	result, err := merger.New().Merge(items)
package merger
