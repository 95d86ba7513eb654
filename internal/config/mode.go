// SPDX-License-Identifier: MIT
package config

import (
	"sync"

	"github.com/rs/zerolog"
)

// ModeWatcher follows theme.dark in the config file and notifies
// subscribers when it flips.
type ModeWatcher struct {
	logger zerolog.Logger

	mu     sync.Mutex
	dark   bool
	nextID int
	subs   map[int]func(bool)
}

// NewModeWatcher starts watching the config file for theme.dark changes
func NewModeWatcher(logger zerolog.Logger) (*ModeWatcher, error) {
	w := &ModeWatcher{
		logger: logger,
		dark:   GetBool("theme.dark"),
		subs:   make(map[int]func(bool)),
	}
	if err := OnChange(w.refresh); err != nil {
		return nil, err
	}
	return w, nil
}

// Dark reports the last seen value of theme.dark
func (w *ModeWatcher) Dark() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dark
}

// Subscribe registers fn for mode changes
func (w *ModeWatcher) Subscribe(fn func(bool)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.subs[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
}

func (w *ModeWatcher) refresh() {
	dark := GetBool("theme.dark")

	w.mu.Lock()
	if dark == w.dark {
		w.mu.Unlock()
		return
	}
	w.dark = dark
	fns := make([]func(bool), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	w.logger.Info().Bool("dark", dark).Msg("theme mode changed")
	for _, fn := range fns {
		fn(dark)
	}
}
