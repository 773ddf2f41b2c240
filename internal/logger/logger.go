// Package logger holds the process-wide structured logger used by the
// command-line tools.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger. It discards everything until Init is called.
var L = slog.New(slog.DiscardHandler)

// Options configures Init.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Level   slog.Level // Minimum level. Default: LevelInfo
	Output  io.Writer  // Destination. Default: os.Stderr
	JSON    bool       // Emit JSON records instead of key=value text
}

// Init replaces L according to opts and returns it.
func Init(opts Options) *slog.Logger {
	if !opts.Enabled {
		L = slog.New(slog.DiscardHandler)
		return L
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var h slog.Handler = slog.NewTextHandler(out, handlerOpts)
	if opts.JSON {
		h = slog.NewJSONHandler(out, handlerOpts)
	}
	L = slog.New(h)
	return L
}
