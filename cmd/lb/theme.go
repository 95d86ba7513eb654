// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/littlebrand/littlebrand/internal/backup"
	"github.com/littlebrand/littlebrand/internal/config"
	"github.com/littlebrand/littlebrand/internal/db"
	"github.com/littlebrand/littlebrand/internal/scale"
	"github.com/littlebrand/littlebrand/internal/themes"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage saved themes",
	Long:  "Save the configured colours under a name and manage saved themes",
}

var themeSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the configured theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := initLogger()

		colors, curve := themeSettings(logger)
		t, err := themes.SaveTheme(db.GetDB(), args[0], colors, curve, config.GetBool("theme.dark"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Saved theme %s\n", t.Name)
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved themes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		saved, err := themes.ListThemes(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(saved) == 0 {
			fmt.Println("No saved themes")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPRIMARY\tCURVE\tDARK\tUPDATED")
		for _, t := range saved {
			primary := t.Colors["primary"]
			if primary == "" {
				primary = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", t.Name, primary, t.Curve, t.Dark, t.UpdatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger := initLogger()

		t, err := themes.GetTheme(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		asCSS, _ := cmd.Flags().GetBool("css")
		if asCSS {
			light, dark := themes.BuildBoth(themes.ThemeColors(t), scale.Curve(t.Curve), logger)
			fmt.Print(themes.GenerateThemeCSS(light, dark))
			return
		}

		fmt.Printf("Name:  %s\n", t.Name)
		fmt.Printf("Curve: %s\n", t.Curve)
		fmt.Printf("Dark:  %t\n", t.Dark)

		roles := make([]string, 0, len(t.Colors))
		for role := range t.Colors {
			roles = append(roles, role)
		}
		sort.Strings(roles)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ROLE\tCOLOR")
		for _, role := range roles {
			fmt.Fprintf(w, "%s\t%s\n", role, t.Colors[role])
		}
		w.Flush()
	},
}

var themeUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Copy a saved theme into the config file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		t, err := themes.GetTheme(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		exitOnError(config.SetThemeColors(t.Colors))
		exitOnError(config.Set("theme.curve", t.Curve))
		exitOnError(config.Set("theme.dark", t.Dark))

		fmt.Printf("Using theme %s\n", t.Name)
	},
}

var themeDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := themes.DeleteTheme(db.GetDB(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Deleted theme %s\n", args[0])
	},
}

var themeExportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export saved themes to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		dir := config.GetString("backup.path")
		if len(args) == 1 {
			dir = args[0]
		}

		filename, err := backup.NewExporter(dir).Export(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Exported themes to %s\n", filepath.Join(dir, filename))
	},
}

var themeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import themes from an export file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		n, err := backup.Import(db.GetDB(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Imported %d themes\n", n)
	},
}

func init() {
	themeShowCmd.Flags().Bool("css", false, "print the light and dark stylesheet")
	themeCmd.AddCommand(themeSaveCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeUseCmd)
	themeCmd.AddCommand(themeDeleteCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)
	rootCmd.AddCommand(themeCmd)
}
