// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/littlebrand/littlebrand/internal/backup"
	"github.com/littlebrand/littlebrand/internal/config"
	"github.com/littlebrand/littlebrand/internal/db"
	"github.com/littlebrand/littlebrand/internal/handlers"
	"github.com/littlebrand/littlebrand/internal/logging"
	"github.com/littlebrand/littlebrand/internal/middleware"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Serve theme stylesheets and the scale API over HTTP",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := initLogger()

		// Saved themes are optional
		if err := db.InitDB(config.GetString("database.type"), config.GetString("database.path")); err != nil {
			logger.Warn().Err(err).Msg("saved themes unavailable")
		} else if interval := config.GetDuration("backup.interval"); interval > 0 {
			scheduler := backup.NewScheduler(backup.NewExporter(config.GetString("backup.path")), db.GetDB(), logging.Component("backup"))
			scheduler.BackupInterval = interval
			scheduler.Retention = config.GetInt("backup.retention")
			scheduler.Start()
			defer scheduler.Stop()
		}

		sink := themes.NewMapSink()
		toggle := themes.NewToggle(config.GetBool("theme.dark"))
		manager := themes.NewManager(sink, toggle, logger)
		defer manager.Close()

		colors, curve := themeSettings(logger)
		if err := manager.Apply(colors, curve); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Edits to the config file re-apply the theme and follow theme.dark
		if err := config.OnChange(func() {
			reloadTheme(manager, toggle, logger)
		}); err != nil {
			logger.Warn().Err(err).Msg("config watching disabled")
		}

		limit := config.GetInt("server.rate_limit")
		if limit <= 0 {
			limit = 60
		}
		limiter := middleware.NewRateLimiter(limit, time.Minute)
		defer limiter.Close()

		gin.SetMode(gin.ReleaseMode)
		h := &handlers.ThemeHandler{
			Sink:   sink,
			Toggle: toggle,
			Settings: func() (themes.Colors, scale.Curve) {
				return themeSettings(logger)
			},
			Logger: logger,
		}
		r, err := handlers.NewRouter(h, limiter, config.GetStringSlice("server.trusted_proxies"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			var err error
			if config.GetBool("server.tls_enabled") {
				logger.Info().Str("addr", httpAddr).Msg("starting HTTPS server")
				err = server.ListenAndServeTLS(config.GetString("server.tls_cert"), config.GetString("server.tls_key"))
			} else {
				logger.Info().Str("addr", httpAddr).Msg("starting HTTP server (TLS disabled)")
				err = server.ListenAndServe()
			}
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errCh:
			if err != nil {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		case <-ctx.Done():
			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("shutdown failed")
			}
		}
	},
}

// reloadTheme follows a config file edit. The mode is switched before the
// new colours are applied so the sink never holds the new colours in the old
// mode.
func reloadTheme(manager *themes.Manager, toggle *themes.Toggle, logger zerolog.Logger) {
	toggle.Set(config.GetBool("theme.dark"))

	colors, curve := themeSettings(logger)
	if err := manager.Apply(colors, curve); err != nil {
		logger.Error().Err(err).Msg("failed to re-apply theme")
	}
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
