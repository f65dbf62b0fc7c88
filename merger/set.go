package merger

import (
	"github.com/vektah/gqlparser/v2/ast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// typeEntry is a combined type definition. declared is false while the entry
// has only been contributed to by `extend` declarations.
type typeEntry struct {
	def      *ast.Definition
	declared bool
}

// CombinedSet is the outcome of a successful merge: at most one schema
// definition, one combined definition per type name and one definition per
// directive name. Types and directives are kept in first-occurrence order.
//
// Descriptions of merged declarations are joined with a newline, existing
// first; an incoming description equal to the existing one is not repeated,
// so "x" merged with "x" stays "x".
//
// The definitions are copies owned by the set; the parsed inputs are never
// modified. Callers should treat the returned definitions as read-only.
type CombinedSet struct {
	schema         *ast.SchemaDefinition
	schemaDeclared bool
	types          *orderedmap.OrderedMap[string, *typeEntry]
	directives     *orderedmap.OrderedMap[string, *ast.DirectiveDefinition]
}

func newCombinedSet() *CombinedSet {
	return &CombinedSet{
		types:      orderedmap.New[string, *typeEntry](),
		directives: orderedmap.New[string, *ast.DirectiveDefinition](),
	}
}

// values returns the values of m from oldest to newest.
func values[V any](m *orderedmap.OrderedMap[string, V]) []V {
	out := make([]V, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Schema returns the combined schema definition, or nil when no schema or
// schema extension was merged.
func (s *CombinedSet) Schema() *ast.SchemaDefinition {
	return s.schema
}

// Types returns the combined type definitions in first-occurrence order.
func (s *CombinedSet) Types() []*ast.Definition {
	out := make([]*ast.Definition, 0, s.types.Len())
	for _, e := range values(s.types) {
		out = append(out, e.def)
	}
	return out
}

// Type returns the combined definition for name.
func (s *CombinedSet) Type(name string) (*ast.Definition, bool) {
	e, ok := s.types.Get(name)
	if !ok {
		return nil, false
	}
	return e.def, true
}

// TypeNames returns the type names in first-occurrence order.
func (s *CombinedSet) TypeNames() []string {
	names := make([]string, 0, s.types.Len())
	for pair := s.types.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Directives returns the directive definitions in first-occurrence order.
func (s *CombinedSet) Directives() []*ast.DirectiveDefinition {
	return values(s.directives)
}

// Directive returns the directive definition for name (without the @).
func (s *CombinedSet) Directive(name string) (*ast.DirectiveDefinition, bool) {
	return s.directives.Get(name)
}

// Len returns the number of entries: types, directives and the schema.
func (s *CombinedSet) Len() int {
	n := s.types.Len() + s.directives.Len()
	if s.schema != nil {
		n++
	}
	return n
}

// IsEmpty reports whether nothing was merged.
func (s *CombinedSet) IsEmpty() bool {
	return s.Len() == 0
}

// Document returns the set as a schema document suitable for the gqlparser
// formatter. Entries that were only ever extended, never declared, are
// emitted as extensions.
func (s *CombinedSet) Document() *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	if s.schema != nil {
		if s.schemaDeclared {
			doc.Schema = append(doc.Schema, s.schema)
		} else {
			doc.SchemaExtension = append(doc.SchemaExtension, s.schema)
		}
	}
	doc.Directives = append(doc.Directives, values(s.directives)...)
	for _, e := range values(s.types) {
		if e.declared {
			doc.Definitions = append(doc.Definitions, e.def)
		} else {
			doc.Extensions = append(doc.Extensions, e.def)
		}
	}
	return doc
}

// KindCounts returns the number of combined types per kind.
func (s *CombinedSet) KindCounts() map[ast.DefinitionKind]int {
	counts := make(map[ast.DefinitionKind]int)
	for _, e := range values(s.types) {
		counts[e.def.Kind]++
	}
	return counts
}
