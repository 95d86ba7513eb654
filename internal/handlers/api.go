// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/tokens"
)

var roleName = regexp.MustCompile(`^[a-z][a-z0-9-]{0,31}$`)

// modeRequest is the body of POST /api/mode
type modeRequest struct {
	Dark *bool `json:"dark" binding:"required"`
}

// ScaleAPI generates a scale for ?seed=&mode=&curve=&alpha=
func (h *ThemeHandler) ScaleAPI(c *gin.Context) {
	seed, mode, curve, ok := h.scaleParams(c)
	if !ok {
		return
	}

	s, err := scale.Generate(seed, mode, scale.WithCurve(curve))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var alpha scale.AlphaScale
	if withAlpha, _ := strconv.ParseBool(c.Query("alpha")); withAlpha {
		alpha = scale.AlphaOrEmpty(seed, mode, h.Logger)
	}
	resp := scale.NewReport(c.Query("seed"), s, curve, alpha)

	c.JSON(http.StatusOK, resp)
}

// TokensAPI returns the semantic, raw and alpha tokens for ?role=&seed=&mode=&curve=
func (h *ThemeHandler) TokensAPI(c *gin.Context) {
	role := c.DefaultQuery("role", "primary")
	if !roleName.MatchString(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role name"})
		return
	}

	seed, mode, curve, ok := h.scaleParams(c)
	if !ok {
		return
	}

	s, err := scale.Generate(seed, mode, scale.WithCurve(curve))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m := tokens.Semantic(role, s)
	m.Merge(tokens.Raw(role, s))
	m.Merge(tokens.Alpha(role, scale.AlphaOrEmpty(seed, mode, h.Logger)))

	c.JSON(http.StatusOK, gin.H{
		"role":   role,
		"mode":   mode.String(),
		"tokens": m,
	})
}

// SetMode switches the served theme between light and dark
func (h *ThemeHandler) SetMode(c *gin.Context) {
	if h.Toggle == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "mode is controlled by the config file"})
		return
	}

	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected {\"dark\": true|false}"})
		return
	}

	h.Toggle.Set(*req.Dark)
	h.Logger.Info().Bool("dark", *req.Dark).Msg("mode switched")
	c.JSON(http.StatusOK, gin.H{"dark": h.Toggle.Dark()})
}

// scaleParams reads seed, mode and curve. An unknown mode falls back to
// light; a bad seed or curve is a 400.
func (h *ThemeHandler) scaleParams(c *gin.Context) (scale.Seed, scale.Mode, scale.Curve, bool) {
	seed, err := scale.ParseSeed(c.Query("seed"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, scale.Light, scale.Natural, false
	}

	curve, err := scale.ParseCurve(c.Query("curve"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, scale.Light, scale.Natural, false
	}

	mode := scale.Light
	if m := c.Query("mode"); m != "" {
		mode = scale.ModeOrLight(m, h.Logger)
	}

	return seed, mode, curve, true
}
