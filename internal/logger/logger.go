/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide logger for tokenvars.
//
// Output goes to stderr by default. When the destination is a terminal, records
// are colorized by tint; otherwise they are written as plain text without timestamps.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	level   = new(slog.LevelVar)
	current atomic.Pointer[slog.Logger]
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	current.Store(slog.New(newHandler(w)))
}

// SetLevel sets the minimum level that is logged. The default is slog.LevelInfo.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func newHandler(w io.Writer) slog.Handler {
	terminal := isTerminal(w)
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !terminal,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !terminal && len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Error logs an error message.
func Error(format string, args ...any) {
	current.Load().Error(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current.Load().Warn(fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current.Load().Info(fmt.Sprintf(format, args...))
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	current.Load().Debug(fmt.Sprintf(format, args...))
}
