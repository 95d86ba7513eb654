// SPDX-License-Identifier: MIT
package models

import "time"

// Theme is a saved set of role seeds
type Theme struct {
	ID        uint              `gorm:"primaryKey"`
	Name      string            `gorm:"uniqueIndex;not null"`
	Colors    map[string]string `gorm:"serializer:json"` // role -> hex, "background" may name a role
	Curve     string            `gorm:"default:natural"` // "natural", "vivid" or "muted"
	Dark      bool              `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
