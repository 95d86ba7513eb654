// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/littlebrand/littlebrand/internal/auth"
	"github.com/littlebrand/littlebrand/internal/middleware"
)

// NewRouter wires every route onto a new engine. X-Forwarded-For is only
// honoured from trustedProxies; with none the peer address is the client.
func NewRouter(h *ThemeHandler, limiter *middleware.RateLimiter, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(h.Logger))
	r.Use(middleware.SecurityHeadersMiddleware())
	if limiter != nil {
		r.Use(middleware.RateLimitMiddleware(limiter, "/api/"))
	}

	r.GET("/health", HealthHandler)
	r.GET("/base.css", BaseCSSHandler)
	r.GET("/theme.css", h.ThemeCSS)
	r.GET("/theme/full.css", h.FullCSS)

	api := r.Group("/api")
	{
		api.GET("/scale", h.ScaleAPI)
		api.GET("/tokens", h.TokensAPI)
		api.POST("/mode", auth.RequireToken(), h.SetMode)
	}

	r.GET("/themes", h.ListSavedThemes)
	r.GET("/themes/:name/theme.css", h.SavedThemeCSS)

	return r, nil
}
