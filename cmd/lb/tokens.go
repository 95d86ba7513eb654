// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/littlebrand/littlebrand/internal/tokens"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <role> <seed>",
	Short: "Print the --lb-* tokens for one role",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := initLogger()

		modeFlag, _ := cmd.Flags().GetString("mode")
		curveFlag, _ := cmd.Flags().GetString("curve")
		raw, _ := cmd.Flags().GetBool("raw")
		asCSS, _ := cmd.Flags().GetBool("css")

		role := args[0]
		seed, err := scale.ParseSeed(args[1])
		exitOnError(err)
		curve, err := scale.ParseCurve(curveFlag)
		exitOnError(err)
		mode := scale.ModeOrLight(modeFlag, logger)

		s, err := scale.Generate(seed, mode, scale.WithCurve(curve))
		exitOnError(err)

		m := tokens.Semantic(role, s)
		if raw {
			m.Merge(tokens.Raw(role, s))
			m.Merge(tokens.Alpha(role, scale.AlphaOrEmpty(seed, mode, logger)))
		}

		if asCSS {
			selector := ":root"
			if mode == scale.Dark {
				selector = ".dark"
			}
			fmt.Print(themes.GenerateCSS(selector, m))
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TOKEN\tVALUE")
		for _, k := range m.Keys() {
			fmt.Fprintf(w, "%s\t%s\n", k, m[k])
		}
		w.Flush()
	},
}

func init() {
	tokensCmd.Flags().String("mode", "light", "light or dark")
	tokensCmd.Flags().String("curve", "natural", "chroma curve: natural, vivid or muted")
	tokensCmd.Flags().Bool("raw", false, "include --lb-<role>-<step> and alpha tokens")
	tokensCmd.Flags().Bool("css", false, "print a CSS rule instead of a table")
	rootCmd.AddCommand(tokensCmd)
}
