// Package log builds the configured slog.Logger for stm32gen.
//
// Without a log file, non-error records go to stdout and errors to stderr,
// so stderr redirection captures only failures. When stdout is a terminal
// the level names are ANSI-colored.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// LevelTrace is a custom slog level below Debug for very verbose output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multiHandler fans out records to multiple handlers.
type multiHandler struct{ hs []slog.Handler }

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return multiHandler{hs: out}
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return multiHandler{hs: out}
}

// levelFilter delegates to an underlying handler but filters which levels
// reach it.
type levelFilter struct {
	pass func(slog.Level) bool
	h    slog.Handler
}

func (f levelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.pass(level) && f.h.Enabled(ctx, level)
}

func (f levelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.pass(r.Level) {
		return nil
	}
	return f.h.Handle(ctx, r)
}

func (f levelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithAttrs(attrs)}
}

func (f levelFilter) WithGroup(name string) slog.Handler {
	return levelFilter{pass: f.pass, h: f.h.WithGroup(name)}
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[0;31m"
	ansiGreen  = "\x1b[0;32m"
	ansiYellow = "\x1b[0;33m"
	ansiCyan   = "\x1b[0;36m"
)

// colorLevelAttr rewrites the level attribute with an ANSI-colored name.
func colorLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey || len(groups) > 0 {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch {
	case lvl >= slog.LevelError:
		a.Value = slog.StringValue(ansiRed + "ERROR" + ansiReset)
	case lvl >= slog.LevelWarn:
		a.Value = slog.StringValue(ansiYellow + "WARN" + ansiReset)
	case lvl >= slog.LevelInfo:
		a.Value = slog.StringValue(ansiCyan + "INFO" + ansiReset)
	case lvl >= slog.LevelDebug:
		a.Value = slog.StringValue(ansiGreen + "DEBUG" + ansiReset)
	default:
		a.Value = slog.StringValue("TRACE")
	}
	return a
}

func consoleOptions(w *os.File, level slog.Level) *slog.HandlerOptions {
	opts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(w.Fd())) {
		opts.ReplaceAttr = colorLevelAttr
	}
	return opts
}

// SetupLogger builds a slog.Logger with console and optional file handlers.
// The returned closers must be closed when the program exits.
func SetupLogger(logLevel, logFile string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	var handlers []slog.Handler

	if logFile == "" {
		stdoutHandler := slog.NewTextHandler(os.Stdout, consoleOptions(os.Stdout, level))
		handlers = append(handlers, levelFilter{
			pass: func(l slog.Level) bool { return l < slog.LevelError },
			h:    stdoutHandler,
		})
		stderrHandler := slog.NewTextHandler(os.Stderr, consoleOptions(os.Stderr, slog.LevelError))
		handlers = append(handlers, levelFilter{
			pass: func(l slog.Level) bool { return l >= slog.LevelError },
			h:    stderrHandler,
		})
	} else {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, consoleOptions(os.Stderr, level)))
	}

	var closeFiles []io.Closer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		closeFiles = append(closeFiles, f)
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(multiHandler{hs: handlers}), closeFiles, nil
}
