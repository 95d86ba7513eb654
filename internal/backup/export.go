// SPDX-License-Identifier: MIT

// Package backup exports saved themes to JSON files and imports them back.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"gorm.io/gorm"
)

// Version is written into every export
const Version = 1

// ExportedTheme is one saved theme in an export file
type ExportedTheme struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
	Curve  string            `json:"curve"`
	Dark   bool              `json:"dark"`
}

// Export is the content of an export file
type Export struct {
	Version   int             `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	Themes    []ExportedTheme `json:"themes"`
}

// Exporter writes theme exports into a directory
type Exporter struct {
	BackupPath string

	now func() time.Time
}

// NewExporter creates a new exporter
func NewExporter(backupPath string) *Exporter {
	return &Exporter{
		BackupPath: backupPath,
		now:        time.Now,
	}
}

// Export writes every saved theme to themes-YYYY-MM-DD-HHMMSS.json and
// returns the file name
func (e *Exporter) Export(db *gorm.DB) (string, error) {
	saved, err := themes.ListThemes(db)
	if err != nil {
		return "", err
	}

	now := e.now().UTC()
	out := Export{Version: Version, Timestamp: now, Themes: make([]ExportedTheme, 0, len(saved))}
	for _, t := range saved {
		out.Themes = append(out.Themes, ExportedTheme{
			Name:   t.Name,
			Colors: t.Colors,
			Curve:  t.Curve,
			Dark:   t.Dark,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}

	if err := os.MkdirAll(e.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	filename := fmt.Sprintf("themes-%s.json", now.Format("2006-01-02-150405"))
	if err := os.WriteFile(filepath.Join(e.BackupPath, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return filename, nil
}

// Import saves every theme in the export file at path, replacing themes
// with the same name. It returns the number imported.
func Import(db *gorm.DB, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read export: %w", err)
	}

	var in Export
	if err := json.Unmarshal(data, &in); err != nil {
		return 0, fmt.Errorf("failed to decode export: %w", err)
	}
	if in.Version != Version {
		return 0, fmt.Errorf("unsupported export version %d", in.Version)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, t := range in.Themes {
			if _, err := themes.SaveTheme(tx, t.Name, themes.Colors(t.Colors), scale.Curve(t.Curve), t.Dark); err != nil {
				return fmt.Errorf("theme %q: %w", t.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(in.Themes), nil
}
