package sdl

import (
	"slices"

	"github.com/vektah/gqlparser/v2/ast"
)

// Combined declarations are built from copies so parser-owned originals are
// never modified. Sub-entities (fields, directives, values) are shared: the
// merger only ever adds or keeps whole sub-entities, it never edits one.

// CloneDefinition returns a copy of def whose member lists can be appended to
// without affecting def.
func CloneDefinition(def *ast.Definition) *ast.Definition {
	if def == nil {
		return nil
	}
	c := *def
	c.Directives = slices.Clone(def.Directives)
	c.Interfaces = slices.Clone(def.Interfaces)
	c.Fields = slices.Clone(def.Fields)
	c.Types = slices.Clone(def.Types)
	c.EnumValues = slices.Clone(def.EnumValues)
	return &c
}

// CloneSchema returns a copy of def whose member lists can be appended to
// without affecting def.
func CloneSchema(def *ast.SchemaDefinition) *ast.SchemaDefinition {
	if def == nil {
		return nil
	}
	c := *def
	c.Directives = slices.Clone(def.Directives)
	c.OperationTypes = slices.Clone(def.OperationTypes)
	return &c
}

// CloneDirectiveDefinition returns a shallow copy of def.
func CloneDirectiveDefinition(def *ast.DirectiveDefinition) *ast.DirectiveDefinition {
	if def == nil {
		return nil
	}
	c := *def
	c.Arguments = slices.Clone(def.Arguments)
	c.Locations = slices.Clone(def.Locations)
	return &c
}
