// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes greem's schema merging as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/greem"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `greem MCP server: merges GraphQL SDL fragments into one schema and reports conflicts.

Configuration: defaults are configurable via GREEM_* environment variables set in your MCP client config.

Key settings:
- GREEM_MAX_FILES (default: 1000): maximum files a pattern-based merge may resolve
- GREEM_CACHE_ENABLED (default: true): disable the parse cache entirely
- GREEM_CACHE_SIZE (default: 256): parsed documents kept in memory
- GREEM_PARSE_CONCURRENCY (default: GOMAXPROCS): files parsed at once
- GREEM_MAX_INLINE_SIZE (default: 10MiB): total size of inline documents per call
- GREEM_MAX_DOCUMENTS (default: 100): inline documents per call

Caching: parsed documents are cached per session, keyed by name and content hash.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "greem", Version: greem.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge GraphQL SDL fragments into a single schema. Provide inline documents, glob patterns resolved on the server filesystem, or both; pattern files are merged first, then documents in order. Unparseable inputs are skipped and listed. The first conflict (duplicate definition or name collision) is returned in the conflict field with its category instead of a schema. Use stats_only=true to omit the merged SDL.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a single GraphQL SDL document and list its top-level declarations (kind, name, line) with per-kind counts. Provide exactly one of document or file. Syntax errors are returned with line and column.",
	}, handleParse)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
