// SPDX-License-Identifier: MIT
package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/littlebrand/littlebrand/internal/models"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Theme{}))
	return db
}

func TestExportFilenameFormat(t *testing.T) {
	db := setupTestDB(t)
	exporter := NewExporter(t.TempDir())
	exporter.now = func() time.Time { return time.Date(2025, 12, 25, 14, 30, 22, 0, time.UTC) }

	filename, err := exporter.Export(db)
	require.NoError(t, err)
	assert.Equal(t, "themes-2025-12-25-143022.json", filename)

	_, err = os.Stat(filepath.Join(exporter.BackupPath, filename))
	assert.NoError(t, err, "export file not created")
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	_, err := themes.SaveTheme(src, "forest", themes.Colors{"primary": "#30a46c"}, scale.Muted, true)
	require.NoError(t, err)
	_, err = themes.SaveTheme(src, "ocean", themes.Colors{"primary": "#0090ff", "background": "primary"}, scale.Natural, false)
	require.NoError(t, err)

	exporter := NewExporter(t.TempDir())
	filename, err := exporter.Export(src)
	require.NoError(t, err)

	dst := setupTestDB(t)
	n, err := Import(dst, filepath.Join(exporter.BackupPath, filename))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	forest, err := themes.GetTheme(dst, "forest")
	require.NoError(t, err)
	assert.Equal(t, "#30a46c", forest.Colors["primary"])
	assert.Equal(t, "muted", forest.Curve)
	assert.True(t, forest.Dark)

	ocean, err := themes.GetTheme(dst, "ocean")
	require.NoError(t, err)
	assert.Equal(t, "primary", ocean.Colors["background"])
}

func TestImportRejectsBadFiles(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()

	_, err := Import(db, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version": 99, "themes": []}`), 0644))
	_, err = Import(db, bad)
	assert.ErrorContains(t, err, "unsupported export version")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"version": 1, "themes": [
		{"name": "ok", "colors": {"primary": "#ffffff"}},
		{"name": "broken", "colors": {"primary": "white"}}
	]}`), 0644))
	_, err = Import(db, invalid)
	assert.ErrorContains(t, err, `theme "broken"`)

	// nothing from the failed file is kept
	saved, err := themes.ListThemes(db)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestSchedulerStartStop(t *testing.T) {
	db := setupTestDB(t)
	exporter := NewExporter(t.TempDir())
	scheduler := NewScheduler(exporter, db, zerolog.Nop())
	scheduler.BackupInterval = time.Hour

	done := scheduler.Start()
	require.Eventually(t, func() bool {
		entries, _ := os.ReadDir(exporter.BackupPath)
		return len(entries) == 1
	}, 2*time.Second, 10*time.Millisecond, "initial export not written")

	scheduler.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestSchedulerPrune(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"themes-2025-01-01-000000.json",
		"themes-2025-01-02-000000.json",
		"themes-2025-01-03-000000.json",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}

	scheduler := NewScheduler(NewExporter(dir), nil, zerolog.Nop())
	scheduler.Retention = 2
	require.NoError(t, scheduler.prune())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"themes-2025-01-02-000000.json", "themes-2025-01-03-000000.json", "notes.txt"}, names)
	assert.False(t, strings.Contains(strings.Join(names, ","), "01-01"))
}
