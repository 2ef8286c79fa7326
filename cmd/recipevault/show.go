package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a recipe in full",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}
		if err := requireLogin(app); err != nil {
			fatal("Cannot show recipe", err)
		}

		r, err := app.Repo.Get(context.Background(), args[0])
		if err != nil {
			fatal("Failed to load recipe", err)
		}

		fmt.Printf("%s\n", r.Title)
		fmt.Printf("Type:    %s\n", typeName(app, r.RecipeTypeID))
		if r.ImageURL != "" {
			fmt.Printf("Image:   %s\n", r.ImageURL)
		}
		fmt.Printf("Created: %s\n", r.CreatedDate.Format("2006-01-02 15:04"))
		fmt.Printf("Updated: %s\n", r.UpdatedDate.Format("2006-01-02 15:04"))

		fmt.Println("\nIngredients:")
		for _, ing := range r.Ingredients {
			fmt.Printf("  - %s\n", ing)
		}

		fmt.Println("\nSteps:")
		for i, step := range r.Steps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
