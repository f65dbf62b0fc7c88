package loader

import "log/slog"

// Logger receives the loader's and merger's structured log events. Attributes
// are key-value pairs in the log/slog convention.
//
// greem logs at these levels:
//
//   - Debug: per-file events such as a parsed file and its declaration count
//   - Info: the summary of a completed merge
//   - Warn: a schema file that was skipped because it could not be read or
//     parsed, and patterns that matched no files
//   - Error: reserved for callers embedding the loader
//
// The CLI installs a [SlogAdapter] over a text handler on stderr; library
// callers get [NopLogger] unless they pass [WithLogger]:
//
//	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
//	l, err := loader.New(loader.WithLogger(loader.NewSlogAdapter(slog.New(handler))))
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
	// With returns a Logger that adds attrs to every event.
	With(attrs ...any) Logger
}

// NopLogger discards every event. It is the default for New and
// merger.MergeWithOptions.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}

// With returns the receiver; there is nothing to attach attributes to.
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter forwards events to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, falling back to slog.Default() when it is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With returns an adapter over s's logger with attrs attached.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
