package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wenhuei/recipevault/pkg/state"
)

var (
	addTitle       string
	addType        string
	addImage       string
	addIngredients []string
	addSteps       []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new recipe",
	Long:  `Add creates a new recipe document in the vault with a generated id.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}
		if err := requireLogin(app); err != nil {
			fatal("Cannot add recipe", err)
		}

		rec, err := app.Form.SubmitCreate(context.Background(), state.Fields{
			Title:        addTitle,
			RecipeTypeID: addType,
			ImageURL:     addImage,
			Ingredients:  joinLines(addIngredients),
			Steps:        joinLines(addSteps),
		})
		if err != nil {
			fatal("Failed to add recipe", err)
		}

		fmt.Printf("Recipe added: %s (%s)\n", rec.Title, rec.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Recipe title")
	addCmd.Flags().StringVar(&addType, "type", "", "Recipe type id (see 'recipevault types')")
	addCmd.Flags().StringVar(&addImage, "image", "", "Image URL")
	addCmd.Flags().StringArrayVar(&addIngredients, "ingredient", nil, "Ingredient (repeatable)")
	addCmd.Flags().StringArrayVar(&addSteps, "step", nil, "Preparation step (repeatable)")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("type")
}
