package loader

import (
	"fmt"
	"runtime"

	"github.com/viant/afs"
)

const (
	// DefaultCacheSize is the number of parsed documents kept by default.
	DefaultCacheSize = 256
)

// Option is a function that configures a Loader.
type Option func(*Loader) error

// WithLogger sets the logger used for skipped files and progress messages.
func WithLogger(logger Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = NopLogger{}
		}
		l.logger = logger
		return nil
	}
}

// WithConcurrency bounds the number of files read and parsed at once.
// Zero selects runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(l *Loader) error {
		if n < 0 {
			return fmt.Errorf("loader: concurrency must be non-negative, got %d", n)
		}
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		l.concurrency = n
		return nil
	}
}

// WithCacheSize sets the number of parsed documents kept in the LRU cache.
// Zero disables caching.
func WithCacheSize(n int) Option {
	return func(l *Loader) error {
		if n < 0 {
			return fmt.Errorf("loader: cache size must be non-negative, got %d", n)
		}
		l.cacheSize = n
		return nil
	}
}

// WithMaxFiles limits how many files a single Load may resolve.
// Zero means unlimited.
func WithMaxFiles(n int) Option {
	return func(l *Loader) error {
		if n < 0 {
			return fmt.Errorf("loader: max files must be non-negative, got %d", n)
		}
		l.maxFiles = n
		return nil
	}
}

// WithFileSystem replaces the file service used to read schema files.
func WithFileSystem(fs afs.Service) Option {
	return func(l *Loader) error {
		if fs == nil {
			return fmt.Errorf("loader: file system must not be nil")
		}
		l.fs = fs
		return nil
	}
}
