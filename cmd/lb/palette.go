// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/littlebrand/littlebrand/internal/config"
	"github.com/littlebrand/littlebrand/internal/preview"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Built-in palettes",
	Long:  "List the built-in palettes or copy one into the config file",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List palettes",
	Run: func(cmd *cobra.Command, args []string) {
		showPreview, _ := cmd.Flags().GetBool("preview")

		if showPreview {
			p := preview.New(os.Stdout)
			for _, palette := range themes.ListPalettes() {
				scales := make(map[string]scale.Scale)
				for _, role := range themes.Roles {
					s, err := scale.Generate(scale.Hex(palette.Colors[role]), scale.Light)
					if err == nil {
						scales[role] = s
					}
				}
				fmt.Println(palette.Name)
				fmt.Println(p.Roles(themes.Roles, scales))
			}
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPRIMARY\tSECONDARY\tNEUTRAL")
		for _, palette := range themes.ListPalettes() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				palette.Name, palette.Colors["primary"], palette.Colors["secondary"], palette.Colors["neutral"])
		}
		w.Flush()
	},
}

var paletteUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Write a palette's colours to the config file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		palette := themes.GetPalette(args[0])
		if palette == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown palette %q\n", args[0])
			os.Exit(1)
		}

		if err := config.SetThemeColors(palette.Colors); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := config.Set("theme.palette", palette.Name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Using palette %s\n", palette.Name)
	},
}

func init() {
	paletteListCmd.Flags().Bool("preview", false, "draw terminal swatches")
	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteUseCmd)
	rootCmd.AddCommand(paletteCmd)
}
