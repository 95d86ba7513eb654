// SPDX-License-Identifier: MIT
package themes

import (
	"testing"

	"github.com/littlebrand/littlebrand/internal/models"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Theme{}))
	return db
}

func TestSaveAndGetTheme(t *testing.T) {
	db := setupTestDB(t)

	saved, err := SaveTheme(db, "brand", Colors{"primary": "#6366f1"}, scale.Vivid, true)
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	got, err := GetTheme(db, "brand")
	require.NoError(t, err)
	assert.Equal(t, "#6366f1", got.Colors["primary"])
	assert.Equal(t, "vivid", got.Curve)
	assert.True(t, got.Dark)

	colors := ThemeColors(got)
	assert.Equal(t, "#6366f1", colors["primary"])
	assert.Equal(t, "#6b7280", colors["neutral"])
}

func TestSaveThemeReplaces(t *testing.T) {
	db := setupTestDB(t)

	_, err := SaveTheme(db, "brand", Colors{"primary": "#6366f1"}, "", false)
	require.NoError(t, err)
	_, err = SaveTheme(db, "brand", Colors{"primary": "#30a46c"}, scale.Muted, false)
	require.NoError(t, err)

	themes, err := ListThemes(db)
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "#30a46c", themes[0].Colors["primary"])
	assert.Equal(t, "muted", themes[0].Curve)
}

func TestSaveThemeValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := SaveTheme(db, "", nil, scale.Natural, false)
	assert.Error(t, err)

	_, err = SaveTheme(db, "bad", Colors{"primary": "orange"}, scale.Natural, false)
	assert.Error(t, err)

	_, err = SaveTheme(db, "bad", nil, "loud", false)
	assert.Error(t, err)

	themes, err := ListThemes(db)
	require.NoError(t, err)
	assert.Empty(t, themes)
}

func TestListThemesOrdered(t *testing.T) {
	db := setupTestDB(t)
	for _, name := range []string{"zebra", "apple", "mango"} {
		_, err := SaveTheme(db, name, nil, scale.Natural, false)
		require.NoError(t, err)
	}

	themes, err := ListThemes(db)
	require.NoError(t, err)
	require.Len(t, themes, 3)
	assert.Equal(t, "apple", themes[0].Name)
	assert.Equal(t, "zebra", themes[2].Name)
}

func TestDeleteTheme(t *testing.T) {
	db := setupTestDB(t)
	_, err := SaveTheme(db, "brand", nil, scale.Natural, false)
	require.NoError(t, err)

	require.NoError(t, DeleteTheme(db, "brand"))
	_, err = GetTheme(db, "brand")
	assert.ErrorIs(t, err, ErrThemeNotFound)

	assert.ErrorIs(t, DeleteTheme(db, "brand"), ErrThemeNotFound)

	// the row is gone, so the name can be reused
	var count int64
	require.NoError(t, db.Unscoped().Model(&models.Theme{}).Count(&count).Error)
	assert.Zero(t, count)
	_, err = SaveTheme(db, "brand", nil, scale.Natural, false)
	assert.NoError(t, err)
}
