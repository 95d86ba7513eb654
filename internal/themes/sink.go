// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/littlebrand/littlebrand/internal/tokens"
)

// MapSink keeps the latest token set in memory.
type MapSink struct {
	mu     sync.RWMutex
	tokens tokens.Map
}

// NewMapSink creates an empty sink.
func NewMapSink() *MapSink {
	return &MapSink{tokens: tokens.Map{}}
}

// Write replaces the stored tokens.
func (s *MapSink) Write(m tokens.Map) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = m.Clone()
	return nil
}

// Snapshot returns a copy of the stored tokens.
func (s *MapSink) Snapshot() tokens.Map {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Clone()
}

// Get returns one token value.
func (s *MapSink) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.tokens[name]
	return v, ok
}

// CSS renders the stored tokens as a :root rule.
func (s *MapSink) CSS() string {
	return GenerateCSS(":root", s.Snapshot())
}

// CSSFileSink writes the token set to a stylesheet on Flush.
type CSSFileSink struct {
	Path string

	mu      sync.Mutex
	pending tokens.Map
}

// NewCSSFileSink creates a sink writing to path.
func NewCSSFileSink(path string) *CSSFileSink {
	return &CSSFileSink{Path: path}
}

// Write buffers m until the next Flush.
func (s *CSSFileSink) Write(m tokens.Map) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = m.Clone()
	return nil
}

// Flush writes the buffered tokens to Path, creating its directory if needed.
func (s *CSSFileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return nil
	}

	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create css directory: %w", err)
		}
	}

	if err := os.WriteFile(s.Path, []byte(GenerateCSS(":root", s.pending)), 0644); err != nil {
		return fmt.Errorf("failed to write css: %w", err)
	}
	return nil
}
