package merger

import (
	"fmt"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/sdl"
	"github.com/vektah/gqlparser/v2/ast"
)

// Merger folds declaration sequences into combined sets.
//
// A Merger holds no state between calls; every Merge starts from an empty
// set, so a single Merger may be shared.
type Merger struct{}

// New creates a new Merger.
func New() *Merger {
	return &Merger{}
}

// MergeResult contains the combined set and metadata about the run.
type MergeResult struct {
	// Set is the combined declaration set.
	Set *CombinedSet
	// Files lists the resolved schema files in resolution order. Empty when
	// the merge was fed declarations directly.
	Files []string
	// SkippedFiles lists files that could not be read or parsed.
	SkippedFiles []string
	// ParseErrors holds one error per skipped file, in the same order.
	ParseErrors []*gqlerrors.ParseError
	// Stats contains statistical information about the merge.
	Stats Stats
}

// Stats summarizes a merge.
type Stats struct {
	// Files is the number of files that contributed declarations or parsed empty.
	Files int `json:"files" yaml:"files"`
	// SkippedFiles is the number of files that could not be read or parsed.
	SkippedFiles int `json:"skippedFiles" yaml:"skippedFiles"`
	// Declarations is the number of declarations consumed.
	Declarations int `json:"declarations" yaml:"declarations"`
	// Types is the number of combined types.
	Types int `json:"types" yaml:"types"`
	// Kinds counts combined types per kind.
	Kinds map[ast.DefinitionKind]int `json:"kinds,omitempty" yaml:"kinds,omitempty"`
	// Directives is the number of directive definitions.
	Directives int `json:"directives" yaml:"directives"`
	// HasSchema reports whether a schema definition or extension was merged.
	HasSchema bool `json:"hasSchema" yaml:"hasSchema"`
}

// Merge folds items, in order, into a new combined set.
//
// The first occurrence of a name seeds its entry; later occurrences of the
// same kind are merged member by member and anything else is a conflict.
// Merging stops at the first conflict, which is returned as a
// *gqlerrors.DuplicateDefinitionError or *gqlerrors.NameCollisionError; no
// partial set is returned. An empty input yields an empty set.
func (m *Merger) Merge(items []sdl.Item) (*MergeResult, error) {
	set := newCombinedSet()
	for _, item := range items {
		if isNilDeclaration(item.Declaration) {
			return nil, fmt.Errorf("merger: nil declaration from %s", item.File)
		}
		if err := set.add(item.Declaration); err != nil {
			return nil, fmt.Errorf("merger: %w", err)
		}
	}

	return &MergeResult{
		Set: set,
		Stats: Stats{
			Declarations: len(items),
			Types:        set.types.Len(),
			Kinds:        set.KindCounts(),
			Directives:   set.directives.Len(),
			HasSchema:    set.schema != nil,
		},
	}, nil
}

// isNilDeclaration reports whether d or the definition it wraps is nil.
func isNilDeclaration(d sdl.Declaration) bool {
	switch d := d.(type) {
	case nil:
		return true
	case *sdl.SchemaDeclaration:
		return d == nil || d.SchemaDefinition == nil
	case *sdl.SchemaExtension:
		return d == nil || d.SchemaDefinition == nil
	case *sdl.TypeDeclaration:
		return d == nil || d.Definition == nil
	case *sdl.TypeExtension:
		return d == nil || d.Definition == nil
	case *sdl.DirectiveDeclaration:
		return d == nil || d.DirectiveDefinition == nil
	default:
		return false
	}
}
