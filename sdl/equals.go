package sdl

// This file contains structural equality for the sub-entities the merger
// compares. Source positions, comments and validator-populated back references
// (Value.Definition, Directive.ParentDefinition, ...) are not content and are
// ignored. Everything else is compared exactly, including the order of
// arguments, object value fields and list values.

import (
	"slices"

	"github.com/erraggy/greem/internal/equalutil"
	"github.com/vektah/gqlparser/v2/ast"
)

// =============================================================================
// Type references and values
// =============================================================================

// EqualType compares two type references, e.g. `[ID!]!`.
func EqualType(a, b *ast.Type) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.Type) bool {
		return a.NamedType == b.NamedType &&
			a.NonNull == b.NonNull &&
			EqualType(a.Elem, b.Elem)
	})
}

// EqualValue compares two literal values (default values, directive arguments).
func EqualValue(a, b *ast.Value) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.Value) bool {
		return a.Kind == b.Kind &&
			a.Raw == b.Raw &&
			equalutil.EqualSlice(a.Children, b.Children, equalChildValue)
	})
}

func equalChildValue(a, b *ast.ChildValue) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.ChildValue) bool {
		return a.Name == b.Name && EqualValue(a.Value, b.Value)
	})
}

// =============================================================================
// Directive usages
// =============================================================================

// EqualArgument compares two arguments of a directive usage.
func EqualArgument(a, b *ast.Argument) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.Argument) bool {
		return a.Name == b.Name && EqualValue(a.Value, b.Value)
	})
}

// EqualDirective compares two directive usages, e.g. `@deprecated(reason: "x")`.
func EqualDirective(a, b *ast.Directive) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.Directive) bool {
		return a.Name == b.Name &&
			equalutil.EqualSlice(a.Arguments, b.Arguments, EqualArgument)
	})
}

func equalDirectives(a, b ast.DirectiveList) bool {
	return equalutil.EqualSlice(a, b, EqualDirective)
}

// =============================================================================
// Members of type declarations
// =============================================================================

// EqualArgumentDefinition compares two argument definitions of a field or directive.
func EqualArgumentDefinition(a, b *ast.ArgumentDefinition) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.ArgumentDefinition) bool {
		return a.Description == b.Description &&
			a.Name == b.Name &&
			EqualType(a.Type, b.Type) &&
			EqualValue(a.DefaultValue, b.DefaultValue) &&
			equalDirectives(a.Directives, b.Directives)
	})
}

// EqualField compares two field definitions. It serves object, interface and
// input object fields alike.
func EqualField(a, b *ast.FieldDefinition) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.FieldDefinition) bool {
		return a.Description == b.Description &&
			a.Name == b.Name &&
			equalutil.EqualSlice(a.Arguments, b.Arguments, EqualArgumentDefinition) &&
			EqualType(a.Type, b.Type) &&
			EqualValue(a.DefaultValue, b.DefaultValue) &&
			equalDirectives(a.Directives, b.Directives)
	})
}

// EqualEnumValue compares two enum value definitions.
func EqualEnumValue(a, b *ast.EnumValueDefinition) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.EnumValueDefinition) bool {
		return a.Description == b.Description &&
			a.Name == b.Name &&
			equalDirectives(a.Directives, b.Directives)
	})
}

// EqualOperationType compares two root operation type entries, e.g. `query: Query`.
func EqualOperationType(a, b *ast.OperationTypeDefinition) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.OperationTypeDefinition) bool {
		return a.Operation == b.Operation && a.Type == b.Type
	})
}

// =============================================================================
// Whole declarations
// =============================================================================

// EqualDirectiveDefinition compares two directive declarations.
func EqualDirectiveDefinition(a, b *ast.DirectiveDefinition) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.DirectiveDefinition) bool {
		return a.Description == b.Description &&
			a.Name == b.Name &&
			a.IsRepeatable == b.IsRepeatable &&
			slices.Equal(a.Locations, b.Locations) &&
			equalutil.EqualSlice(a.Arguments, b.Arguments, EqualArgumentDefinition)
	})
}

// EqualDefinition compares two type definitions member by member, in order.
func EqualDefinition(a, b *ast.Definition) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.Definition) bool {
		return a.Kind == b.Kind &&
			a.Description == b.Description &&
			a.Name == b.Name &&
			equalDirectives(a.Directives, b.Directives) &&
			slices.Equal(a.Interfaces, b.Interfaces) &&
			equalutil.EqualSlice(a.Fields, b.Fields, EqualField) &&
			slices.Equal(a.Types, b.Types) &&
			equalutil.EqualSlice(a.EnumValues, b.EnumValues, EqualEnumValue)
	})
}

// EqualSchema compares two schema definitions.
func EqualSchema(a, b *ast.SchemaDefinition) bool {
	return equalutil.EqualPtr(a, b, func(a, b *ast.SchemaDefinition) bool {
		return a.Description == b.Description &&
			equalDirectives(a.Directives, b.Directives) &&
			equalutil.EqualSlice(a.OperationTypes, b.OperationTypes, EqualOperationType)
	})
}
