package logs

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	// Writer receives text records. Defaults to os.Stderr.
	Writer io.Writer
	// Level is one of debug, info, warn, error. Empty means warn.
	Level string
	// File, when set, also receives every record as JSON.
	File string
}

// New returns a logger and a function that releases its resources.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if opts.Level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, nil, errors.Wrapf(err, "log level %q", opts.Level)
		}
		level.Set(l)
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		}),
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
