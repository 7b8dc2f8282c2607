// Package logger builds the process logger: JSON records to a rotating file,
// plus human-readable records on stderr when verbose.
package logger

import (
	"io"
	"log/slog"
	"path/filepath"

	multi "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Dir     string    // Directory for glue.log; empty disables the file sink
	Verbose bool      // Also log to Stderr at debug level
	Stderr  io.Writer // Verbose sink
}

// New returns a logger and a closer for its file sink.
func New(opts Options) (*slog.Logger, io.Closer) {
	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	if opts.Dir != "" {
		file := &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, "glue.log"),
			MaxSize:    4,
			MaxBackups: 3,
			MaxAge:     30,
			Compress:   true,
		}
		closer = file
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level:       slog.LevelInfo,
			ReplaceAttr: redact,
		}))
	}

	if opts.Verbose && opts.Stderr != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{
			Level:       slog.LevelDebug,
			ReplaceAttr: redact,
		}))
	}

	if len(handlers) == 0 {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), closer
	}
	return slog.New(multi.Fanout(handlers...)), closer
}

// redact keeps credentials out of every sink.
func redact(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case "api_key", "apiKey":
		a.Value = slog.StringValue("[redacted]")
	}
	return a
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
