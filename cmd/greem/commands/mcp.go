package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/erraggy/greem/internal/cliutil"
	"github.com/erraggy/greem/internal/mcpserver"
)

// HandleMCP executes the mcp command: it serves the MCP tools over stdio
// until the client disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: greem mcp\n\n")
		cliutil.Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio exposing the\n")
		cliutil.Writef(fs.Output(), "merge and parse tools.\n\n")
		cliutil.Writef(fs.Output(), "Configuration is read from GREEM_* environment variables:\n")
		cliutil.Writef(fs.Output(), "  GREEM_MAX_FILES          maximum files a merge may resolve (default: 1000)\n")
		cliutil.Writef(fs.Output(), "  GREEM_CACHE_SIZE         parsed documents kept in memory (default: 256)\n")
		cliutil.Writef(fs.Output(), "  GREEM_PARSE_CONCURRENCY  files parsed at once (default: GOMAXPROCS)\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}
