// SPDX-License-Identifier: MIT
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/littlebrand/littlebrand/internal/db"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/rs/zerolog"
)

const cssContentType = "text/css; charset=utf-8"

// Settings returns the configured role seeds and curve
type Settings func() (themes.Colors, scale.Curve)

// ThemeHandler serves the active theme and the theme API
type ThemeHandler struct {
	Sink     *themes.MapSink
	Toggle   *themes.Toggle
	Settings Settings
	Logger   zerolog.Logger
}

// HealthHandler reports that the server is up
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "littlebrand",
	})
}

// BaseCSSHandler serves the mode-independent design tokens
func BaseCSSHandler(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, cssContentType, []byte(themes.BaseCSS()))
}

// ThemeCSS serves the token set the manager last applied
func (h *ThemeHandler) ThemeCSS(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, cssContentType, []byte(h.Sink.CSS()))
}

// FullCSS serves the light tokens on :root and the dark tokens on .dark
func (h *ThemeHandler) FullCSS(c *gin.Context) {
	colors, curve := h.Settings()
	light, dark := themes.BuildBoth(colors, curve, h.Logger)

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, cssContentType, []byte(themes.GenerateThemeCSS(light, dark)))
}

// ListSavedThemes returns the names of the themes in the database
func (h *ThemeHandler) ListSavedThemes(c *gin.Context) {
	database := db.GetDB()
	if database == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
		return
	}

	saved, err := themes.ListThemes(database)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to list themes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list themes"})
		return
	}

	list := make([]gin.H, 0, len(saved))
	for _, t := range saved {
		list = append(list, gin.H{
			"name":    t.Name,
			"curve":   t.Curve,
			"dark":    t.Dark,
			"colors":  t.Colors,
			"updated": t.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"themes": list})
}

// SavedThemeCSS renders a saved theme as a light and dark stylesheet
func (h *ThemeHandler) SavedThemeCSS(c *gin.Context) {
	database := db.GetDB()
	if database == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
		return
	}

	t, err := themes.GetTheme(database, c.Param("name"))
	if err != nil {
		if errors.Is(err, themes.ErrThemeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "theme not found"})
			return
		}
		h.Logger.Error().Err(err).Str("theme", c.Param("name")).Msg("failed to load theme")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load theme"})
		return
	}

	light, dark := themes.BuildBoth(themes.ThemeColors(t), scale.Curve(t.Curve), h.Logger)
	c.Data(http.StatusOK, cssContentType, []byte(themes.GenerateThemeCSS(light, dark)))
}
