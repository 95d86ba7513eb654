// SPDX-License-Identifier: MIT
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Scheduler exports saved themes on an interval
type Scheduler struct {
	Exporter       *Exporter
	DB             *gorm.DB
	BackupInterval time.Duration
	Retention      int // exports to keep, 0 keeps all

	logger   zerolog.Logger
	done     chan bool
	stopChan chan bool
}

// NewScheduler creates a new backup scheduler
func NewScheduler(exporter *Exporter, db *gorm.DB, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		Exporter:       exporter,
		DB:             db,
		BackupInterval: 24 * time.Hour, // Default: daily
		Retention:      10,
		logger:         logger,
		done:           make(chan bool, 1),
		stopChan:       make(chan bool, 1),
	}
}

// Start begins the backup scheduler in a goroutine
// Returns a done channel that receives when the scheduler stops
func (s *Scheduler) Start() chan bool {
	go func() {
		ticker := time.NewTicker(s.BackupInterval)
		defer ticker.Stop()

		// Run initial backup immediately
		if err := s.runBackup(); err != nil {
			s.logger.Error().Err(err).Msg("initial theme export failed")
		}

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-ticker.C:
				if err := s.runBackup(); err != nil {
					s.logger.Error().Err(err).Msg("scheduled theme export failed")
				}
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- true:
	default:
	}
}

// runBackup performs a single export and prunes old ones
func (s *Scheduler) runBackup() error {
	filename, err := s.Exporter.Export(s.DB)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	s.logger.Info().Str("file", filename).Msg("themes exported")

	return s.prune()
}

// prune deletes the oldest exports beyond Retention
func (s *Scheduler) prune() error {
	if s.Retention <= 0 {
		return nil
	}

	entries, err := os.ReadDir(s.Exporter.BackupPath)
	if err != nil {
		return fmt.Errorf("failed to list exports: %w", err)
	}

	var exports []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "themes-") && strings.HasSuffix(e.Name(), ".json") {
			exports = append(exports, e.Name())
		}
	}
	// names sort by timestamp
	sort.Strings(exports)

	for len(exports) > s.Retention {
		if err := os.Remove(filepath.Join(s.Exporter.BackupPath, exports[0])); err != nil {
			return fmt.Errorf("failed to remove old export: %w", err)
		}
		exports = exports[1:]
	}
	return nil
}
