package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a recipe from the vault",
	Long:  `Delete permanently removes a recipe document from the vault.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}
		if err := requireLogin(app); err != nil {
			fatal("Cannot delete recipe", err)
		}

		ctx := context.Background()
		if err := app.List.Load(ctx); err != nil {
			fatal("Failed to load recipes", err)
		}
		if err := app.List.Delete(ctx, args[0]); err != nil {
			fatal("Failed to delete recipe", err)
		}

		fmt.Printf("Recipe deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
