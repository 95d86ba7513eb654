// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used across littlebrand.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

// New creates a logger at level writing to w. Terminals get the console
// writer; anything else gets JSON lines. Unknown levels mean info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Init replaces the process logger returned by Component.
func Init(level string, w io.Writer) zerolog.Logger {
	logger := New(level, w)
	mu.Lock()
	base = logger
	mu.Unlock()
	return logger
}

// Component returns the process logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
