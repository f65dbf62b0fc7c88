// Package gqlerrors provides structured error types for greem.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell a broken configuration apart from a
// genuine conflict between schema fragments.
//
// # Error Categories
//
//   - ConfigError: Invalid configuration, detected before any merging happens
//   - DuplicateDefinitionError: A construct that may only be declared once was declared again
//   - NameCollisionError: Two declarations or sub-entities share a name but cannot be unified
//   - ParseError: A schema file could not be read or parsed (never returned by a merge)
//
// # Usage with errors.As
//
//	result, err := merger.MergeWithOptions(ctx, merger.WithPatterns("schema/**/*.graphql"))
//	if err != nil {
//	    var collision *gqlerrors.NameCollisionError
//	    if errors.As(err, &collision) && collision.Reason == gqlerrors.ReasonDifferentKind {
//	        // Handle a type declared with two different kinds
//	    }
//	}
package gqlerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("invalid configuration")

	// ErrDuplicateDefinition indicates a construct was declared more than once.
	ErrDuplicateDefinition = errors.New("duplicate definition found")

	// ErrNameCollision indicates two same-named declarations could not be unified.
	ErrNameCollision = errors.New("name collision")

	// ErrParse indicates a schema file could not be read or parsed.
	ErrParse = errors.New("parse error")
)

// DefinitionKind identifies which construct was declared twice.
type DefinitionKind int

const (
	// DefinitionSchema is the schema (root operation types) declaration.
	DefinitionSchema DefinitionKind = iota
	// DefinitionScalar is a scalar type declaration.
	DefinitionScalar
	// DefinitionField is a field or input field repeated within one declaration.
	DefinitionField
	// DefinitionDirective is a directive declaration.
	DefinitionDirective
	// DefinitionEnumValue is an enum value repeated within one declaration.
	DefinitionEnumValue
)

// String returns the string representation of the definition kind.
func (k DefinitionKind) String() string {
	switch k {
	case DefinitionSchema:
		return "schema"
	case DefinitionScalar:
		return "scalar"
	case DefinitionField:
		return "field"
	case DefinitionDirective:
		return "directive"
	case DefinitionEnumValue:
		return "enum value"
	default:
		return "unknown"
	}
}

// CollisionReason explains why two same-named entities could not be unified.
type CollisionReason int

const (
	// ReasonDifferentKind means the declarations are of different kinds (e.g. type vs scalar).
	ReasonDifferentKind CollisionReason = iota
	// ReasonDifferentContent means the entities are of the same kind but their content differs.
	ReasonDifferentContent
)

// String returns the string representation of the collision reason.
func (r CollisionReason) String() string {
	switch r {
	case ReasonDifferentKind:
		return "different kind"
	case ReasonDifferentContent:
		return "different content"
	default:
		return "unknown"
	}
}

// ConfigError represents an invalid configuration or input.
// This includes a malformed output directory, missing schema patterns and
// malformed glob patterns.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "invalid configuration"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DuplicateDefinitionError reports a construct that cannot coexist with an
// earlier declaration of the same kind and name.
type DuplicateDefinitionError struct {
	// Kind identifies the construct that collided
	Kind DefinitionKind
	// Name is the colliding name (empty for DefinitionSchema)
	Name string
}

// Error returns a human-readable error message.
func (e *DuplicateDefinitionError) Error() string {
	msg := "duplicate definition found: " + e.Kind.String()
	if e.Name != "" {
		msg += fmt.Sprintf(" '%s'", e.Name)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DuplicateDefinitionError) Is(target error) bool {
	return target == ErrDuplicateDefinition
}

// NameCollisionError reports two declarations or sub-entities that share a
// name but cannot be unified.
type NameCollisionError struct {
	// Name is the colliding name: a type, directive, field, enum value or operation
	Name string
	// Reason explains why the two could not be unified
	Reason CollisionReason
}

// Error returns a human-readable error message.
func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("name collision: '%s' (%s)", e.Name, e.Reason)
}

// Is reports whether target matches this error type.
func (e *NameCollisionError) Is(target error) bool {
	return target == ErrNameCollision
}

// ParseError represents a failure to read or parse a schema file.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IsConflict reports whether err is a merge conflict, i.e. a
// DuplicateDefinitionError or a NameCollisionError anywhere in its chain.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateDefinition) || errors.Is(err, ErrNameCollision)
}

// Category returns the short category name of a greem error, or "" when err
// is not one of the types in this package.
func Category(err error) string {
	switch {
	case errors.Is(err, ErrConfig):
		return "invalid-config"
	case errors.Is(err, ErrDuplicateDefinition):
		return "duplicate-definition"
	case errors.Is(err, ErrNameCollision):
		return "name-collision"
	case errors.Is(err, ErrParse):
		return "parse"
	default:
		return ""
	}
}
