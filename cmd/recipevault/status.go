package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and vault status",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if user, ok := app.Auth.CurrentUser(); ok {
			fmt.Printf("Logged in as %s.\n", user)
		} else {
			fmt.Println("Not logged in.")
		}

		fmt.Printf("Recipe types loaded: %d\n", app.Catalog.Len())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
