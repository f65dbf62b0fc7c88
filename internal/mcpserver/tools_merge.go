package mcpserver

import (
	"context"
	"errors"
	"slices"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/merger"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type mergeInput struct {
	Documents []documentInput `json:"documents,omitempty"  jsonschema:"Inline SDL documents, merged in order after pattern files"`
	Patterns  []string        `json:"patterns,omitempty"   jsonschema:"Doublestar glob patterns resolved on the server filesystem"`
	StatsOnly bool            `json:"stats_only,omitempty" jsonschema:"Omit the merged SDL and return statistics only"`
}

type skippedOutput struct {
	Name    string `json:"name"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

type conflictOutput struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type mergeOutput struct {
	Schema   string          `json:"schema,omitempty"`
	Files    []string        `json:"files,omitempty"`
	Skipped  []skippedOutput `json:"skipped,omitempty"`
	Stats    *merger.Stats   `json:"stats,omitempty"`
	Conflict *conflictOutput `json:"conflict,omitempty"`
}

func handleMerge(ctx context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Documents) == 0 && len(input.Patterns) == 0 {
		return errResult(errors.New("at least one of documents or patterns must be provided")), mergeOutput{}, nil
	}

	l, err := sharedLoader()
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}
	items, skippedDocs, err := parseDocuments(l, input.Documents)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	opts := []merger.Option{merger.WithLoader(l)}
	if len(input.Patterns) > 0 {
		opts = append(opts, merger.WithPatterns(input.Patterns...))
	}
	if len(input.Documents) > 0 {
		opts = append(opts, merger.WithItems(items...))
	}

	result, err := merger.MergeWithOptions(ctx, opts...)
	if err != nil {
		if gqlerrors.IsConflict(err) {
			return nil, mergeOutput{Conflict: &conflictOutput{
				Category: gqlerrors.Category(err),
				Message:  sanitizeError(err),
			}}, nil
		}
		return errResult(err), mergeOutput{}, nil
	}

	parseErrors := slices.Concat(result.ParseErrors, skippedDocs)
	stats := result.Stats
	stats.Files += len(input.Documents) - len(skippedDocs)
	stats.SkippedFiles += len(skippedDocs)

	output := mergeOutput{
		Files:   result.Files,
		Skipped: makeSlice[skippedOutput](len(parseErrors)),
		Stats:   &stats,
	}
	for _, pe := range parseErrors {
		output.Skipped = append(output.Skipped, skippedOutput{
			Name:    pe.Path,
			Line:    pe.Line,
			Column:  pe.Column,
			Message: pe.Message,
		})
	}
	if !input.StatsOnly {
		output.Schema = merger.Format(result.Set)
	}
	return nil, output, nil
}
