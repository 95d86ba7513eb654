// SPDX-License-Identifier: MIT
package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&Theme{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestCreateTheme(t *testing.T) {
	db := setupTestDB(t)

	theme := Theme{
		Name:   "brand",
		Colors: map[string]string{"primary": "#6366f1", "background": "neutral"},
	}

	result := db.Create(&theme)
	if result.Error != nil {
		t.Fatalf("Failed to create theme: %v", result.Error)
	}

	if theme.ID == 0 {
		t.Error("Theme ID should be set after creation")
	}

	var loaded Theme
	if err := db.First(&loaded, theme.ID).Error; err != nil {
		t.Fatalf("Failed to load theme: %v", err)
	}
	if loaded.Colors["primary"] != "#6366f1" {
		t.Errorf("Expected primary #6366f1, got %q", loaded.Colors["primary"])
	}
	if loaded.Curve != "natural" {
		t.Errorf("Expected default curve natural, got %q", loaded.Curve)
	}
}

func TestThemeNameUnique(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Create(&Theme{Name: "dup"}).Error; err != nil {
		t.Fatalf("Failed to create theme: %v", err)
	}
	if err := db.Create(&Theme{Name: "dup"}).Error; err == nil {
		t.Error("Expected unique constraint violation for duplicate name")
	}
}

func TestThemeDeleteIsPermanent(t *testing.T) {
	db := setupTestDB(t)

	if db.Migrator().HasColumn(&Theme{}, "deleted_at") {
		t.Error("themes should not have a deleted_at column")
	}

	theme := Theme{Name: "brand"}
	if err := db.Create(&theme).Error; err != nil {
		t.Fatalf("Failed to create theme: %v", err)
	}
	if err := db.Delete(&theme).Error; err != nil {
		t.Fatalf("Failed to delete theme: %v", err)
	}

	var count int64
	db.Unscoped().Model(&Theme{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected deleted row to be gone, found %d", count)
	}
}
