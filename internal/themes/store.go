// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"

	"github.com/littlebrand/littlebrand/internal/models"
	"github.com/littlebrand/littlebrand/internal/scale"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrThemeNotFound is returned when no saved theme has the requested name
var ErrThemeNotFound = errors.New("theme not found")

// SaveTheme validates and stores a theme, replacing any theme with the same name
func SaveTheme(db *gorm.DB, name string, colors Colors, curve scale.Curve, dark bool) (*models.Theme, error) {
	if name == "" {
		return nil, fmt.Errorf("theme name is required")
	}
	if err := colors.Validate(); err != nil {
		return nil, err
	}
	if _, err := scale.ParseCurve(string(curve)); err != nil {
		return nil, err
	}
	if curve == "" {
		curve = scale.Natural
	}

	theme := &models.Theme{
		Name:   name,
		Colors: map[string]string(colors),
		Curve:  string(curve),
		Dark:   dark,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"colors", "curve", "dark", "updated_at"}),
	}).Create(theme).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}

	return GetTheme(db, name)
}

// GetTheme loads a saved theme by name
func GetTheme(db *gorm.DB, name string) (*models.Theme, error) {
	var theme models.Theme
	if err := db.Where("name = ?", name).First(&theme).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThemeNotFound
		}
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return &theme, nil
}

// ListThemes returns all saved themes ordered by name
func ListThemes(db *gorm.DB) ([]models.Theme, error) {
	var themes []models.Theme
	if err := db.Order("name").Find(&themes).Error; err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return themes, nil
}

// DeleteTheme removes a saved theme
func DeleteTheme(db *gorm.DB, name string) error {
	result := db.Where("name = ?", name).Delete(&models.Theme{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete theme: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrThemeNotFound
	}
	return nil
}

// ThemeColors returns the saved seeds with defaults filled in
func ThemeColors(t *models.Theme) Colors {
	return Colors(t.Colors).WithDefaults()
}
