package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	listType string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes in the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}
		if err := requireLogin(app); err != nil {
			fatal("Cannot list recipes", err)
		}

		if err := app.List.SetFilter(context.Background(), listType); err != nil {
			fatal("Failed to load recipes", err)
		}
		recipes := app.List.Recipes.Get()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(recipes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, r := range recipes {
			fmt.Printf("%s  %s  [%s]  %s\n", r.ID, r.Title, typeName(app, r.RecipeTypeID), r.CreatedDate.Format("2006-01-02"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by recipe type id")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
