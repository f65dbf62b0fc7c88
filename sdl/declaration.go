package sdl

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Declaration is a top-level construct of a schema document. The set of
// implementations is closed: *SchemaDeclaration, *SchemaExtension,
// *TypeDeclaration, *TypeExtension and *DirectiveDeclaration.
type Declaration interface {
	declarationNode()
	// Pos returns where the declaration starts in its source, nil when unknown.
	Pos() *ast.Position
}

// SchemaDeclaration is a `schema { ... }` block designating root operation types.
type SchemaDeclaration struct {
	*ast.SchemaDefinition
}

// SchemaExtension is an `extend schema ...` block.
type SchemaExtension struct {
	*ast.SchemaDefinition
}

// TypeDeclaration is a named type declaration. The embedded definition's Kind
// tags it as a scalar, object, interface, union, enum or input object.
type TypeDeclaration struct {
	*ast.Definition
}

// TypeExtension is an `extend <kind> Name ...` declaration. Kind carries the
// kind of the extended type.
type TypeExtension struct {
	*ast.Definition
}

// DirectiveDeclaration is a `directive @name ... on ...` declaration.
type DirectiveDeclaration struct {
	*ast.DirectiveDefinition
}

func (*SchemaDeclaration) declarationNode()    {}
func (*SchemaExtension) declarationNode()      {}
func (*TypeDeclaration) declarationNode()      {}
func (*TypeExtension) declarationNode()        {}
func (*DirectiveDeclaration) declarationNode() {}

// Pos implements Declaration.
func (d *SchemaDeclaration) Pos() *ast.Position { return d.Position }

// Pos implements Declaration.
func (d *SchemaExtension) Pos() *ast.Position { return d.Position }

// Pos implements Declaration.
func (d *TypeDeclaration) Pos() *ast.Position { return d.Position }

// Pos implements Declaration.
func (d *TypeExtension) Pos() *ast.Position { return d.Position }

// Pos implements Declaration.
func (d *DirectiveDeclaration) Pos() *ast.Position { return d.Position }

var (
	_ Declaration = (*SchemaDeclaration)(nil)
	_ Declaration = (*SchemaExtension)(nil)
	_ Declaration = (*TypeDeclaration)(nil)
	_ Declaration = (*TypeExtension)(nil)
	_ Declaration = (*DirectiveDeclaration)(nil)
)

// Item is one declaration together with the file it came from.
type Item struct {
	// File identifies the source document.
	File string
	// Declaration is the parsed declaration. It is never modified by greem.
	Declaration Declaration
}

// NameOf returns the merge key of a declaration: the type or directive name.
// Schema declarations and extensions have no name and return "".
func NameOf(d Declaration) string {
	switch d := d.(type) {
	case *TypeDeclaration:
		return d.Name
	case *TypeExtension:
		return d.Name
	case *DirectiveDeclaration:
		return d.Name
	default:
		return ""
	}
}

// FromDocument flattens a parsed schema document into its declarations in
// source order. gqlparser groups declarations by category, so the original
// order is restored from source offsets; declarations without a position keep
// their relative order and sort after positioned ones.
func FromDocument(doc *ast.SchemaDocument) []Declaration {
	if doc == nil {
		return nil
	}
	n := len(doc.Schema) + len(doc.SchemaExtension) + len(doc.Directives) + len(doc.Definitions) + len(doc.Extensions)
	decls := make([]Declaration, 0, n)
	for _, def := range doc.Schema {
		decls = append(decls, &SchemaDeclaration{SchemaDefinition: def})
	}
	for _, def := range doc.SchemaExtension {
		decls = append(decls, &SchemaExtension{SchemaDefinition: def})
	}
	for _, def := range doc.Directives {
		decls = append(decls, &DirectiveDeclaration{DirectiveDefinition: def})
	}
	for _, def := range doc.Definitions {
		decls = append(decls, &TypeDeclaration{Definition: def})
	}
	for _, def := range doc.Extensions {
		decls = append(decls, &TypeExtension{Definition: def})
	}
	slices.SortStableFunc(decls, func(a, b Declaration) int {
		return cmp.Compare(offset(a), offset(b))
	})
	return decls
}

func offset(d Declaration) int {
	if pos := d.Pos(); pos != nil {
		return pos.Start
	}
	return math.MaxInt
}

// KindLabel turns a definition kind such as INPUT_OBJECT into a display label
// such as "Input Object".
func KindLabel(kind ast.DefinitionKind) string {
	words := strings.ReplaceAll(strings.ToLower(string(kind)), "_", " ")
	return cases.Title(language.English).String(words)
}

// Label returns a short display label for the kind of declaration d is,
// e.g. "Object", "Enum Extension" or "Directive".
func Label(d Declaration) string {
	switch d := d.(type) {
	case *SchemaDeclaration:
		return "Schema"
	case *SchemaExtension:
		return "Schema Extension"
	case *TypeDeclaration:
		return KindLabel(d.Kind)
	case *TypeExtension:
		return KindLabel(d.Kind) + " Extension"
	case *DirectiveDeclaration:
		return "Directive"
	default:
		return "Unknown"
	}
}
