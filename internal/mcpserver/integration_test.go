package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "greem-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Tools, 2)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %q has no input schema", tool.Name)
	}
	assert.True(t, slices.Contains(names, "merge"))
	assert.True(t, slices.Contains(names, "parse"))
}

func TestIntegration_CallTool_Merge(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "merge",
		Arguments: map[string]any{
			"documents": []any{
				map[string]any{"name": "query.graphql", "content": "type Query { user: User }"},
				map[string]any{"name": "user.graphql", "content": "type User { id: ID! }\nextend type Query { users: [User!]! }"},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "merge should succeed")

	structured := unmarshalStructured(t, result)
	schema, ok := structured["schema"].(string)
	require.True(t, ok, "schema should be a string")
	assert.Contains(t, schema, "users: [User!]!")

	stats, ok := structured["stats"].(map[string]any)
	require.True(t, ok, "stats should be an object")
	assert.Equal(t, float64(2), stats["types"])
	assert.Equal(t, float64(2), stats["files"])
	assert.Nil(t, structured["conflict"])
}

func TestIntegration_CallTool_MergeConflict(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "merge",
		Arguments: map[string]any{
			"documents": []any{
				map[string]any{"content": "directive @auth on FIELD_DEFINITION"},
				map[string]any{"content": "directive @auth on OBJECT"},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "a conflict is reported as output")

	structured := unmarshalStructured(t, result)
	conflict, ok := structured["conflict"].(map[string]any)
	require.True(t, ok, "conflict should be an object")
	assert.Equal(t, "duplicate-definition", conflict["category"])
	assert.Contains(t, conflict["message"], "directive 'auth'")
}

func TestIntegration_CallTool_Parse(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "parse",
		Arguments: map[string]any{
			"document": map[string]any{
				"content": "type Query { a: Int }\nenum Color { RED GREEN }",
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "parse should succeed on valid SDL")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(2), structured["declaration_count"])
	kinds, ok := structured["kinds"].(map[string]any)
	require.True(t, ok, "kinds should be an object")
	assert.Equal(t, float64(1), kinds["Enum"])
}

func TestIntegration_CallTool_Error_InvalidSDL(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "parse",
		Arguments: map[string]any{
			"document": map[string]any{"content": "this is not SDL {"},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "parse should return IsError for unparseable input")

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.Contains(t, text.Text, "parse error")
}

func TestIntegration_CallTool_Error_MissingInput(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "merge",
		Arguments: map[string]any{},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "merge should return IsError when no input is provided")
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
