package merger

import (
	"fmt"
	"slices"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/sdl"
	"github.com/vektah/gqlparser/v2/ast"
)

// add folds one declaration into the set.
func (s *CombinedSet) add(d sdl.Declaration) error {
	switch d := d.(type) {
	case *sdl.SchemaDeclaration:
		return s.addSchema(d.SchemaDefinition, true)
	case *sdl.SchemaExtension:
		return s.addSchema(d.SchemaDefinition, false)
	case *sdl.TypeDeclaration:
		return s.addType(d.Definition, true)
	case *sdl.TypeExtension:
		return s.addType(d.Definition, false)
	case *sdl.DirectiveDeclaration:
		return s.addDirective(d.DirectiveDefinition)
	default:
		return fmt.Errorf("unsupported declaration %T", d)
	}
}

func (s *CombinedSet) addSchema(def *ast.SchemaDefinition, declared bool) error {
	if s.schema == nil {
		s.schema = sdl.CloneSchema(def)
		s.schemaDeclared = declared
		return nil
	}
	if declared && s.schemaDeclared {
		return &gqlerrors.DuplicateDefinitionError{Kind: gqlerrors.DefinitionSchema}
	}
	if err := mergeSchema(s.schema, def); err != nil {
		return err
	}
	s.schemaDeclared = s.schemaDeclared || declared
	return nil
}

func (s *CombinedSet) addType(def *ast.Definition, declared bool) error {
	if err := checkUniqueMembers(def); err != nil {
		return err
	}
	entry, ok := s.types.Get(def.Name)
	if !ok {
		s.types.Set(def.Name, &typeEntry{def: sdl.CloneDefinition(def), declared: declared})
		return nil
	}
	if entry.def.Kind != def.Kind {
		return &gqlerrors.NameCollisionError{Name: def.Name, Reason: gqlerrors.ReasonDifferentKind}
	}
	if def.Kind == ast.Scalar && declared && entry.declared {
		return &gqlerrors.DuplicateDefinitionError{Kind: gqlerrors.DefinitionScalar, Name: def.Name}
	}
	if err := mergeDefinition(entry.def, def); err != nil {
		return err
	}
	entry.declared = entry.declared || declared
	return nil
}

func (s *CombinedSet) addDirective(def *ast.DirectiveDefinition) error {
	if _, ok := s.directives.Get(def.Name); ok {
		return &gqlerrors.DuplicateDefinitionError{Kind: gqlerrors.DefinitionDirective, Name: def.Name}
	}
	s.directives.Set(def.Name, sdl.CloneDirectiveDefinition(def))
	return nil
}

// mergeDefinition folds src into dst, which must be of the same kind.
func mergeDefinition(dst, src *ast.Definition) error {
	var err error
	dst.Description = combineDescription(dst.Description, src.Description)
	if dst.Directives, err = unionByName(dst.Directives, src.Directives, directiveName, sdl.EqualDirective); err != nil {
		return err
	}

	switch dst.Kind {
	case ast.Scalar:
	case ast.Object, ast.Interface:
		dst.Interfaces = unionNames(dst.Interfaces, src.Interfaces)
		dst.Fields, err = unionByName(dst.Fields, src.Fields, fieldName, sdl.EqualField)
	case ast.InputObject:
		dst.Fields, err = unionByName(dst.Fields, src.Fields, fieldName, sdl.EqualField)
	case ast.Union:
		dst.Types = unionNames(dst.Types, src.Types)
	case ast.Enum:
		dst.EnumValues, err = unionByName(dst.EnumValues, src.EnumValues, enumValueName, sdl.EqualEnumValue)
	default:
		return fmt.Errorf("unsupported definition kind %q for %s", dst.Kind, dst.Name)
	}
	return err
}

func mergeSchema(dst, src *ast.SchemaDefinition) error {
	var err error
	dst.Description = combineDescription(dst.Description, src.Description)
	if dst.Directives, err = unionByName(dst.Directives, src.Directives, directiveName, sdl.EqualDirective); err != nil {
		return err
	}
	dst.OperationTypes, err = unionByName(dst.OperationTypes, src.OperationTypes, operationName, sdl.EqualOperationType)
	return err
}

// combineDescription joins two descriptions, existing first. An identical
// incoming description is not repeated.
func combineDescription(existing, incoming string) string {
	switch {
	case incoming == "" || incoming == existing:
		return existing
	case existing == "":
		return incoming
	default:
		return existing + "\n" + incoming
	}
}

// unionByName appends the incoming entries whose name is not yet present in
// existing. An incoming entry whose name is present must be equal to one of
// the existing entries of that name, otherwise the names collide. Entries are
// only checked against existing, so a repeatable directive may occur several
// times in one declaration.
func unionByName[S ~[]T, T any](existing, incoming S, name func(T) string, equal func(a, b T) bool) (S, error) {
	index := make(map[string][]T, len(existing))
	for _, e := range existing {
		index[name(e)] = append(index[name(e)], e)
	}
	out := existing
	for _, in := range incoming {
		same, ok := index[name(in)]
		if !ok {
			out = append(out, in)
			continue
		}
		if !slices.ContainsFunc(same, func(e T) bool { return equal(e, in) }) {
			return nil, &gqlerrors.NameCollisionError{Name: name(in), Reason: gqlerrors.ReasonDifferentContent}
		}
	}
	return out, nil
}

// unionNames appends the names of incoming not already in existing.
func unionNames(existing, incoming []string) []string {
	out := existing
	for _, name := range incoming {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// checkUniqueMembers rejects a single declaration that repeats a field or
// enum value name.
func checkUniqueMembers(def *ast.Definition) error {
	seen := make(map[string]struct{}, len(def.Fields)+len(def.EnumValues))
	for _, f := range def.Fields {
		if _, dup := seen[f.Name]; dup {
			return &gqlerrors.DuplicateDefinitionError{Kind: gqlerrors.DefinitionField, Name: f.Name}
		}
		seen[f.Name] = struct{}{}
	}
	clear(seen)
	for _, v := range def.EnumValues {
		if _, dup := seen[v.Name]; dup {
			return &gqlerrors.DuplicateDefinitionError{Kind: gqlerrors.DefinitionEnumValue, Name: v.Name}
		}
		seen[v.Name] = struct{}{}
	}
	return nil
}

func directiveName(d *ast.Directive) string { return d.Name }
func fieldName(f *ast.FieldDefinition) string { return f.Name }
func enumValueName(v *ast.EnumValueDefinition) string { return v.Name }
func operationName(o *ast.OperationTypeDefinition) string { return string(o.Operation) }
