package mcpserver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no path", errors.New("name collision: 'Foo' (different kind)"), "name collision: 'Foo' (different kind)"},
		{"tmp path", fmt.Errorf("parse error in /tmp/x/schema.graphql at line 1"), "parse error in <path> at line 1"},
		{"home path", errors.New("open /home/me/schema/a.graphql: permission denied"), "open <path>: permission denied"},
		{"relative path kept", errors.New("parse error in schema/a.graphql"), "parse error in schema/a.graphql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("read /var/lib/schema.graphql: boom"))
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "read <path>: boom", text.Text)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

// withConfig replaces the active server configuration for the duration of a test.
func withConfig(t *testing.T, mutate func(*serverConfig)) {
	t.Helper()
	origCfg := cfg
	c := *origCfg
	mutate(&c)
	cfg = &c
	t.Cleanup(func() { cfg = origCfg })
}

// resultText returns the text of an error result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", res.Content[0])
	return text.Text
}
