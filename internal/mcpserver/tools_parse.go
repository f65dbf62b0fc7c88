package mcpserver

import (
	"context"
	"errors"

	"github.com/erraggy/greem/sdl"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Document *documentInput `json:"document,omitempty" jsonschema:"Inline SDL document to parse"`
	File     string         `json:"file,omitempty"     jsonschema:"Path to a schema file on disk"`
}

type declarationSummary struct {
	Kind string `json:"kind"`
	Name string `json:"name,omitempty"`
	Line int    `json:"line,omitempty"`
}

type parseOutput struct {
	Name             string               `json:"name"`
	DeclarationCount int                  `json:"declaration_count"`
	Kinds            map[string]int       `json:"kinds,omitempty"`
	Declarations     []declarationSummary `json:"declarations,omitempty"`
}

func handleParse(ctx context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	if (input.Document == nil) == (input.File == "") {
		return errResult(errors.New("exactly one of document or file must be provided")), parseOutput{}, nil
	}

	l, err := sharedLoader()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	var (
		name  string
		decls []sdl.Declaration
	)
	if input.Document != nil {
		if err := checkDocuments([]documentInput{*input.Document}); err != nil {
			return errResult(err), parseOutput{}, nil
		}
		name = documentName(*input.Document, 0)
		if decls, err = l.ParseSource(name, input.Document.Content); err != nil {
			return errResult(err), parseOutput{}, nil
		}
	} else {
		name = input.File
		res, err := l.LoadFiles(ctx, []string{input.File})
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		if len(res.Skipped) > 0 {
			return errResult(res.Skipped[0]), parseOutput{}, nil
		}
		for _, item := range res.Items {
			decls = append(decls, item.Declaration)
		}
	}

	output := parseOutput{
		Name:             name,
		DeclarationCount: len(decls),
		Declarations:     makeSlice[declarationSummary](len(decls)),
	}
	if len(decls) > 0 {
		output.Kinds = make(map[string]int)
	}
	for _, d := range decls {
		label := sdl.Label(d)
		output.Kinds[label]++
		summary := declarationSummary{Kind: label, Name: sdl.NameOf(d)}
		if pos := d.Pos(); pos != nil {
			summary.Line = pos.Line
		}
		output.Declarations = append(output.Declarations, summary)
	}
	return nil, output, nil
}
