package mcpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/loader"
	"github.com/erraggy/greem/sdl"
)

// documentInput is one inline SDL document passed to a tool.
type documentInput struct {
	Name    string `json:"name,omitempty" jsonschema:"Identifier for the document in reports (default: documentN.graphql)"`
	Content string `json:"content"        jsonschema:"Inline GraphQL SDL"`
}

var (
	loaderOnce sync.Once
	shared     *loader.Loader
	sharedErr  error
)

// sharedLoader returns the session-wide loader. Its parse cache is keyed by
// document name and content hash, so repeated calls with unchanged documents
// skip parsing.
func sharedLoader() (*loader.Loader, error) {
	loaderOnce.Do(func() {
		shared, sharedErr = newLoader(cfg)
	})
	return shared, sharedErr
}

func newLoader(c *serverConfig) (*loader.Loader, error) {
	cacheSize := c.CacheSize
	if !c.CacheEnabled {
		cacheSize = 0
	}
	return loader.New(
		loader.WithLogger(loader.NewSlogAdapter(slog.Default())),
		loader.WithMaxFiles(c.MaxFiles),
		loader.WithCacheSize(cacheSize),
		loader.WithConcurrency(c.ParseConcurrency),
	)
}

// documentName returns the name of the i-th document, defaulting to a
// synthetic file name.
func documentName(d documentInput, i int) string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("document%d.graphql", i+1)
}

// checkDocuments enforces the inline document limits.
func checkDocuments(docs []documentInput) error {
	if len(docs) > cfg.MaxDocuments {
		return fmt.Errorf("too many documents: %d exceeds maximum %d; set GREEM_MAX_DOCUMENTS to increase",
			len(docs), cfg.MaxDocuments)
	}
	var total int64
	for _, d := range docs {
		total += int64(len(d.Content))
	}
	if total > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use patterns instead, or set GREEM_MAX_INLINE_SIZE to increase",
			total, cfg.MaxInlineSize)
	}
	return nil
}

// parseDocuments parses docs in order. Documents that fail to parse are
// reported in skipped and contribute nothing, the same way unparseable files
// are skipped.
func parseDocuments(l *loader.Loader, docs []documentInput) (items []sdl.Item, skipped []*gqlerrors.ParseError, err error) {
	if err := checkDocuments(docs); err != nil {
		return nil, nil, err
	}
	for i, d := range docs {
		name := documentName(d, i)
		decls, err := l.ParseSource(name, d.Content)
		if err != nil {
			var pe *gqlerrors.ParseError
			if !errors.As(err, &pe) {
				return nil, nil, err
			}
			skipped = append(skipped, pe)
			continue
		}
		for _, decl := range decls {
			items = append(items, sdl.Item{File: name, Declaration: decl})
		}
	}
	return items, skipped, nil
}
