package gqlerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "output_directory",
			Value:   "a\x00b",
			Message: "contains NUL byte",
			Cause:   errors.New("underlying"),
		}
		assert.Equal(t, "invalid configuration for output_directory (value: a\x00b): contains NUL byte: underlying", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ConfigError{}
		assert.Equal(t, "invalid configuration", err.Error())
	})

	t.Run("Is matches ErrConfig only", func(t *testing.T) {
		err := &ConfigError{Option: "schema"}
		assert.ErrorIs(t, err, ErrConfig)
		assert.NotErrorIs(t, err, ErrNameCollision)
		assert.NotErrorIs(t, err, ErrDuplicateDefinition)
		assert.False(t, IsConflict(err))
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("bad pattern")
		err := &ConfigError{Cause: cause}
		assert.ErrorIs(t, err, cause)
	})
}

func TestDuplicateDefinitionError(t *testing.T) {
	tests := []struct {
		name string
		err  *DuplicateDefinitionError
		want string
	}{
		{"schema", &DuplicateDefinitionError{Kind: DefinitionSchema}, "duplicate definition found: schema"},
		{"scalar", &DuplicateDefinitionError{Kind: DefinitionScalar, Name: "DateTime"}, "duplicate definition found: scalar 'DateTime'"},
		{"field", &DuplicateDefinitionError{Kind: DefinitionField, Name: "id"}, "duplicate definition found: field 'id'"},
		{"directive", &DuplicateDefinitionError{Kind: DefinitionDirective, Name: "auth"}, "duplicate definition found: directive 'auth'"},
		{"enum value", &DuplicateDefinitionError{Kind: DefinitionEnumValue, Name: "RED"}, "duplicate definition found: enum value 'RED'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrDuplicateDefinition)
			assert.True(t, IsConflict(tt.err))
		})
	}
}

func TestNameCollisionError(t *testing.T) {
	err := &NameCollisionError{Name: "Foo", Reason: ReasonDifferentKind}
	assert.Equal(t, "name collision: 'Foo' (different kind)", err.Error())
	assert.ErrorIs(t, err, ErrNameCollision)
	assert.NotErrorIs(t, err, ErrDuplicateDefinition)

	err = &NameCollisionError{Name: "id", Reason: ReasonDifferentContent}
	assert.Equal(t, "name collision: 'id' (different content)", err.Error())
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "schema/user.graphql",
			Line:    3,
			Column:  7,
			Message: "Expected Name, found }",
			Cause:   errors.New("underlying"),
		}
		assert.Equal(t, "parse error in schema/user.graphql at line 3, column 7: Expected Name, found }: underlying", err.Error())
	})

	t.Run("Error message with line only", func(t *testing.T) {
		err := &ParseError{Line: 10}
		assert.Equal(t, "parse error at line 10", err.Error())
	})

	t.Run("Is matches ErrParse and is not a conflict", func(t *testing.T) {
		err := &ParseError{}
		assert.ErrorIs(t, err, ErrParse)
		assert.False(t, IsConflict(err))
	})
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("merger: %w", &NameCollisionError{Name: "User", Reason: ReasonDifferentKind})

	var collision *NameCollisionError
	require.ErrorAs(t, wrapped, &collision)
	assert.Equal(t, "User", collision.Name)
	assert.Equal(t, ReasonDifferentKind, collision.Reason)
	assert.True(t, IsConflict(wrapped))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "invalid-config", Category(&ConfigError{}))
	assert.Equal(t, "duplicate-definition", Category(&DuplicateDefinitionError{}))
	assert.Equal(t, "name-collision", Category(&NameCollisionError{}))
	assert.Equal(t, "parse", Category(&ParseError{}))
	assert.Empty(t, Category(errors.New("other")))
	assert.Empty(t, Category(nil))
}

func TestKindAndReasonStrings(t *testing.T) {
	assert.Equal(t, "unknown", DefinitionKind(99).String())
	assert.Equal(t, "unknown", CollisionReason(99).String())
}
