// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/littlebrand/littlebrand/internal/auth"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "API token management",
	Long:  "Issue bearer tokens for the server's write endpoints",
}

var tokenCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create an API token",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		token, err := auth.GenerateToken(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	tokenCmd.AddCommand(tokenCreateCmd)
	rootCmd.AddCommand(tokenCmd)
}
