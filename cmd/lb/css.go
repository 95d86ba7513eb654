// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/littlebrand/littlebrand/internal/config"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/spf13/cobra"
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Write the theme stylesheet",
	Long: `Write the configured theme as CSS.

Without --watch the file holds the light tokens on :root and the dark tokens
on .dark. With --watch it holds the tokens for the mode in theme.dark and is
rewritten whenever the config file changes.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := initLogger()

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = config.GetString("output.css_path")
		}
		watch, _ := cmd.Flags().GetBool("watch")
		withBase, _ := cmd.Flags().GetBool("base")

		colors, curve := themeSettings(logger)
		if err := colors.Validate(); err != nil {
			logger.Warn().Err(err).Msg("invalid roles will use the neutral scale")
		}

		if !watch {
			light, dark := themes.BuildBoth(colors, curve, logger)
			css := themes.GenerateThemeCSS(light, dark)
			if withBase {
				css = themes.BaseCSS() + "\n" + css
			}

			if out == "-" {
				fmt.Print(css)
				return
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if err := os.WriteFile(out, []byte(css), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Wrote %s\n", out)
			return
		}

		modeWatcher, err := config.NewModeWatcher(logger)
		exitOnError(err)

		manager := themes.NewManager(themes.NewCSSFileSink(out), modeWatcher, logger)
		defer manager.Close()

		exitOnError(manager.Apply(colors, curve))
		logger.Info().Str("path", out).Bool("dark", modeWatcher.Dark()).Msg("watching config for changes")

		err = config.OnChange(func() {
			colors, curve := themeSettings(logger)
			if err := manager.Apply(colors, curve); err != nil {
				logger.Error().Err(err).Msg("failed to re-apply theme")
			}
		})
		exitOnError(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
	},
}

func init() {
	cssCmd.Flags().StringP("output", "o", "", "output file, - for stdout (defaults to output.css_path)")
	cssCmd.Flags().Bool("watch", false, "keep the file up to date as the config changes")
	cssCmd.Flags().Bool("base", false, "include spacing, radius and typography tokens")
	rootCmd.AddCommand(cssCmd)
}
