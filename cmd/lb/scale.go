// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/littlebrand/littlebrand/internal/preview"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/spf13/cobra"
)

var scaleCmd = &cobra.Command{
	Use:   "scale <seed>",
	Short: "Generate a 12-step scale",
	Long: `Generate the 12-step OKLCH scale for a seed colour.

The seed may be a hex colour (#f76b15), rgb(247, 107, 21) or oklch(0.69 0.19 45).
Step 9 is always the seed itself.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := initLogger()

		modeFlag, _ := cmd.Flags().GetString("mode")
		curveFlag, _ := cmd.Flags().GetString("curve")
		withAlpha, _ := cmd.Flags().GetBool("alpha")
		asJSON, _ := cmd.Flags().GetBool("json")
		showPreview, _ := cmd.Flags().GetBool("preview")

		seed, err := scale.ParseSeed(args[0])
		exitOnError(err)
		curve, err := scale.ParseCurve(curveFlag)
		exitOnError(err)
		mode := scale.ModeOrLight(modeFlag, logger)

		s, err := scale.Generate(seed, mode, scale.WithCurve(curve))
		exitOnError(err)

		var alpha scale.AlphaScale
		if withAlpha {
			alpha = scale.AlphaOrEmpty(seed, mode, logger)
		}

		switch {
		case asJSON:
			resp := scale.NewReport(args[0], s, curve, alpha)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			exitOnError(enc.Encode(resp))

		case showPreview:
			fmt.Println(preview.New(os.Stdout).Scale(args[0], s))

		default:
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			if withAlpha {
				fmt.Fprintln(w, "STEP\tOKLCH\tHEX\tALPHA")
			} else {
				fmt.Fprintln(w, "STEP\tOKLCH\tHEX")
			}
			for n := 1; n <= scale.Steps; n++ {
				if withAlpha && len(alpha) == scale.Steps {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n, s.CSS(n), s.Step(n).Hex(), alpha[n-1].CSS())
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", n, s.CSS(n), s.Step(n).Hex())
			}
			w.Flush()
		}
	},
}

func init() {
	scaleCmd.Flags().String("mode", "light", "light or dark")
	scaleCmd.Flags().String("curve", "natural", "chroma curve: natural, vivid or muted")
	scaleCmd.Flags().Bool("alpha", false, "include the translucent alpha scale")
	scaleCmd.Flags().Bool("json", false, "print JSON")
	scaleCmd.Flags().Bool("preview", false, "draw terminal swatches")
	rootCmd.AddCommand(scaleCmd)
}
