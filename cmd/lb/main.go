// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/littlebrand/littlebrand/internal/config"
	"github.com/littlebrand/littlebrand/internal/db"
	"github.com/littlebrand/littlebrand/internal/logging"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "lb",
	Short: "littlebrand - perceptual colour scales and design tokens",
	Long: `littlebrand turns a handful of brand colours into 12-step OKLCH scales
for light and dark mode, and maps them onto --lb-* CSS custom properties.

Use it to inspect scales, write theme stylesheets, or serve them over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to log.level")
}

// initConfig initializes the configuration system
func initConfig() error {
	return config.InitConfig(config.DefaultPath())
}

// initSystemDB opens the saved-theme database
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")

	return db.InitDB(dbType, dbPath)
}

// initLogger builds the process logger from --log-level or log.level
func initLogger() zerolog.Logger {
	level := logLevel
	if level == "" {
		level = config.GetString("log.level")
	}
	return logging.Init(level, os.Stderr)
}

// themeSettings reads the role seeds and curve from the config file
func themeSettings(logger zerolog.Logger) (themes.Colors, scale.Curve) {
	curve, err := scale.ParseCurve(config.GetString("theme.curve"))
	if err != nil {
		logger.Warn().Err(err).Msg("using natural curve")
	}
	return themes.Colors(config.ThemeColors()).WithDefaults(), curve
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
