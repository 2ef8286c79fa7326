package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available recipe types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		for _, t := range app.Catalog.Types() {
			fmt.Printf("%s  %s - %s\n", t.ID, t.Name, t.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
