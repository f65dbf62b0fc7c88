package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/erraggy/greem/gqlerrors"
	"github.com/erraggy/greem/sdl"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/minio/highwayhash"
	"github.com/viant/afs"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/sync/errgroup"
)

var hashKey = []byte("greem/loader/document-cache-key!")

type cacheKey struct {
	name string
	sum  uint64
}

// Loader reads and parses schema files.
// A Loader is safe for concurrent use.
type Loader struct {
	fs          afs.Service
	cache       *lru.Cache[cacheKey, []sdl.Declaration]
	cacheSize   int
	concurrency int
	maxFiles    int
	logger      Logger
}

// FileResult is the outcome of parsing one file.
type FileResult struct {
	// Path is the file as resolved.
	Path string
	// Declarations holds the file's declarations in source order.
	Declarations []sdl.Declaration
	// Err is set when the file was skipped.
	Err *gqlerrors.ParseError
}

// Result is the outcome of Load.
type Result struct {
	// Files lists every resolved file in resolution order, skipped ones included.
	Files []string
	// Items is the collected declaration sequence.
	Items []sdl.Item
	// Skipped holds one error per file that could not be read or parsed.
	Skipped []*gqlerrors.ParseError
}

// New creates a Loader.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{
		fs:          afs.New(),
		cacheSize:   DefaultCacheSize,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if l.cacheSize > 0 {
		cache, err := lru.New[cacheKey, []sdl.Declaration](l.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("loader: creating parse cache: %w", err)
		}
		l.cache = cache
	}
	return l, nil
}

// Concurrency returns the maximum number of files parsed at once.
func (l *Loader) Concurrency() int {
	return l.concurrency
}

// Load resolves patterns, parses every file and collects the declarations.
func (l *Loader) Load(ctx context.Context, patterns []string) (*Result, error) {
	files, err := Resolve(patterns)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("resolved schema files", "patterns", len(patterns), "files", len(files))
	return l.LoadFiles(ctx, files)
}

// LoadFiles parses the given files and collects the declarations.
func (l *Loader) LoadFiles(ctx context.Context, files []string) (*Result, error) {
	if l.maxFiles > 0 && len(files) > l.maxFiles {
		return nil, &gqlerrors.ConfigError{
			Option:  "schema",
			Value:   len(files),
			Message: fmt.Sprintf("matched more than the maximum of %d files", l.maxFiles),
		}
	}
	results, err := l.Parse(ctx, files)
	if err != nil {
		return nil, err
	}
	out := &Result{
		Files: files,
		Items: Collect(results),
	}
	for _, r := range results {
		if r.Err != nil {
			out.Skipped = append(out.Skipped, r.Err)
		}
	}
	return out, nil
}

// Parse reads and parses paths concurrently. Results are returned in the order
// of paths. Read and parse failures are reported per file in FileResult.Err and
// never fail the call; the only error returned is a context error.
func (l *Loader) Parse(ctx context.Context, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = l.parseFile(ctx, path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return results, nil
}

func (l *Loader) parseFile(ctx context.Context, path string) FileResult {
	res := FileResult{Path: path}

	url := path
	if abs, err := filepath.Abs(path); err == nil {
		url = abs
	}
	content, err := l.fs.DownloadWithURL(ctx, url)
	if err != nil {
		res.Err = &gqlerrors.ParseError{Path: path, Message: "cannot read file", Cause: err}
		l.logger.Warn("skipping unreadable schema file", "path", path, "error", err)
		return res
	}

	decls, err := l.ParseSource(path, string(content))
	if err != nil {
		var perr *gqlerrors.ParseError
		if !errors.As(err, &perr) {
			perr = &gqlerrors.ParseError{Path: path, Cause: err}
		}
		res.Err = perr
		l.logger.Warn("skipping unparseable schema file", "path", path, "line", perr.Line, "error", perr.Message)
		return res
	}
	l.logger.Debug("parsed schema file", "path", path, "declarations", len(decls))
	res.Declarations = decls
	return res
}

// ParseSource parses one schema document held in memory. name identifies the
// document in positions and errors. Failures are *gqlerrors.ParseError.
func (l *Loader) ParseSource(name, content string) ([]sdl.Declaration, error) {
	key := cacheKey{name: name, sum: contentHash(content)}
	if l.cache != nil {
		if decls, ok := l.cache.Get(key); ok {
			return decls, nil
		}
	}

	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: content})
	if err != nil {
		return nil, toParseError(name, err)
	}
	decls := sdl.FromDocument(doc)
	if l.cache != nil {
		l.cache.Add(key, decls)
	}
	return decls, nil
}

func contentHash(content string) uint64 {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		// Only returned for a key that is not 32 bytes long.
		panic(err)
	}
	_, _ = h.Write([]byte(content))
	return h.Sum64()
}

func toParseError(name string, err error) *gqlerrors.ParseError {
	pe := &gqlerrors.ParseError{Path: name, Message: err.Error()}
	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		pe.Message = gqlErr.Message
		if len(gqlErr.Locations) > 0 {
			pe.Line = gqlErr.Locations[0].Line
			pe.Column = gqlErr.Locations[0].Column
		}
	}
	return pe
}
