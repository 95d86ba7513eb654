// SPDX-License-Identifier: MIT
package themes

import (
	"sync"

	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/tokens"
	"github.com/rs/zerolog"
)

// Sink receives the active token set. Each Write replaces the previous one.
type Sink interface {
	Write(tokens.Map) error
}

// Flusher is implemented by sinks that buffer writes.
type Flusher interface {
	Flush() error
}

// ModeSource reports whether dark mode is active and notifies subscribers
// when that changes.
type ModeSource interface {
	Dark() bool
	Subscribe(fn func(dark bool)) (unsubscribe func())
}

// Manager applies a theme to a sink and re-applies it whenever its mode
// source switches between light and dark.
type Manager struct {
	mu     sync.Mutex
	sink   Sink
	mode   ModeSource
	logger zerolog.Logger

	colors   Colors
	curve    scale.Curve
	applied  bool
	current  tokens.Map
	lastDark tokens.Map

	unsubscribe func()
}

// NewManager creates a manager writing to sink. A nil mode source means the
// theme is always light.
func NewManager(sink Sink, mode ModeSource, logger zerolog.Logger) *Manager {
	if mode == nil {
		mode = StaticMode(false)
	}
	return &Manager{
		sink:   sink,
		mode:   mode,
		logger: logger,
	}
}

// Apply generates the theme for colors in the current mode and writes it to
// the sink. The dark token set is cached so a later switch to dark does not
// regenerate it.
func (m *Manager) Apply(colors Colors, curve scale.Curve) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.colors = colors.WithDefaults()
	m.curve = curve
	m.applied = true
	m.lastDark = Build(m.colors, curve, scale.Dark, m.logger)

	if err := m.writeLocked(m.mode.Dark()); err != nil {
		return err
	}

	if m.unsubscribe == nil {
		m.unsubscribe = m.mode.Subscribe(m.modeChanged)
	}
	return nil
}

func (m *Manager) modeChanged(dark bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.applied {
		return
	}
	if err := m.writeLocked(dark); err != nil {
		m.logger.Error().Err(err).Bool("dark", dark).Msg("failed to re-apply theme")
	}
}

func (m *Manager) writeLocked(dark bool) error {
	set := m.lastDark
	if !dark || set == nil {
		set = Build(m.colors, m.curve, scale.ModeFromDark(dark), m.logger)
	}

	if err := m.sink.Write(set.Clone()); err != nil {
		return err
	}
	if f, ok := m.sink.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}

	m.current = set
	m.logger.Debug().Bool("dark", dark).Int("tokens", len(set)).Msg("theme applied")
	return nil
}

// Current returns a copy of the token set last written to the sink.
func (m *Manager) Current() tokens.Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	return m.current.Clone()
}

// LastDark returns a copy of the cached dark token set.
func (m *Manager) LastDark() tokens.Map {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastDark == nil {
		return nil
	}
	return m.lastDark.Clone()
}

// Close stops listening for mode changes. The sink keeps its last contents.
func (m *Manager) Close() {
	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// StaticMode is a mode source that never changes.
type StaticMode bool

// Dark reports the fixed mode.
func (s StaticMode) Dark() bool { return bool(s) }

// Subscribe does nothing; a static mode never notifies.
func (s StaticMode) Subscribe(func(bool)) func() { return func() {} }

// Toggle is a mode source switched programmatically.
type Toggle struct {
	mu     sync.Mutex
	dark   bool
	nextID int
	subs   map[int]func(bool)
}

// NewToggle creates a toggle starting in the given mode.
func NewToggle(dark bool) *Toggle {
	return &Toggle{dark: dark, subs: make(map[int]func(bool))}
}

// Dark reports whether dark mode is on.
func (t *Toggle) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Set switches the mode and notifies subscribers if it changed.
func (t *Toggle) Set(dark bool) {
	t.mu.Lock()
	if t.dark == dark {
		t.mu.Unlock()
		return
	}
	t.dark = dark
	subs := make([]func(bool), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(dark)
	}
}

// Subscribe registers fn for mode changes.
func (t *Toggle) Subscribe(fn func(bool)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	t.subs[id] = fn

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.subs, id)
	}
}

// Subscribers returns the number of registered subscribers.
func (t *Toggle) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs)
}
