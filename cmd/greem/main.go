package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/erraggy/greem"
	"github.com/erraggy/greem/cmd/greem/commands"
	"github.com/erraggy/greem/gqlerrors"
)

// commandNames lists the subcommands considered for "did you mean" hints.
var commandNames = []string{"merge", "check", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	var err error
	switch command {
	case "version", "-v", "--version":
		_, _ = fmt.Fprintf(stdout, "greem %s (commit %s, built %s, %s)\n",
			greem.Version(), greem.Commit(), greem.BuildTime(), greem.GoVersion())
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "merge":
		err = commands.HandleMerge(args[1:])
	case "check":
		err = commands.HandleCheck(args[1:])
	case "mcp":
		err = commands.HandleMCP(args[1:])
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			_, _ = fmt.Fprintf(stderr, "Did you mean '%s'?\n", suggestion)
		}
		_, _ = fmt.Fprintln(stderr)
		printUsage(stderr)
		return 1
	}

	if err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// reportError prints err and, for merge conflicts and configuration problems,
// the error category.
func reportError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %v\n", err)
	if category := gqlerrors.Category(err); category != "" {
		_, _ = fmt.Fprintf(w, "Category: %s\n", category)
	}
	if errors.Is(err, gqlerrors.ErrConfig) {
		_, _ = fmt.Fprintln(w, "Run 'greem <command> --help' for usage.")
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein.ComputeDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, `greem - GraphQL schema fragment merger

Usage:
  greem <command> [options]

Commands:
  merge       Merge schema fragments and write the combined schema
  check       Merge schema fragments and report conflicts without writing
  mcp         Start the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  greem merge
  greem merge -c greem.yaml -o ./__generated__
  greem merge 'schema/**/*.graphql'
  greem check --format json 'schema/**/*.graphql'

Run 'greem <command> --help' for more information on a command.`)
}
