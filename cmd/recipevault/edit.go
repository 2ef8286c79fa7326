package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wenhuei/recipevault/pkg/state"
)

var (
	editTitle       string
	editType        string
	editImage       string
	editIngredients []string
	editSteps       []string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing recipe",
	Long:  `Edit overwrites the given fields of a recipe; omitted flags keep the stored values.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}
		if err := requireLogin(app); err != nil {
			fatal("Cannot edit recipe", err)
		}

		ctx := context.Background()
		existing, err := app.Repo.Get(ctx, args[0])
		if err != nil {
			fatal("Failed to load recipe", err)
		}

		fields := state.Fields{
			Title:        existing.Title,
			RecipeTypeID: existing.RecipeTypeID,
			ImageURL:     existing.ImageURL,
			Ingredients:  strings.Join(existing.Ingredients, "\n"),
			Steps:        strings.Join(existing.Steps, "\n"),
		}
		if cmd.Flags().Changed("title") {
			fields.Title = editTitle
		}
		if cmd.Flags().Changed("type") {
			fields.RecipeTypeID = editType
		}
		if cmd.Flags().Changed("image") {
			fields.ImageURL = editImage
		}
		if cmd.Flags().Changed("ingredient") {
			fields.Ingredients = joinLines(editIngredients)
		}
		if cmd.Flags().Changed("step") {
			fields.Steps = joinLines(editSteps)
		}

		rec, err := app.Form.SubmitUpdate(ctx, existing, fields)
		if err != nil {
			fatal("Failed to update recipe", err)
		}

		fmt.Printf("Recipe updated: %s (%s)\n", rec.Title, rec.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "Recipe title")
	editCmd.Flags().StringVar(&editType, "type", "", "Recipe type id")
	editCmd.Flags().StringVar(&editImage, "image", "", "Image URL")
	editCmd.Flags().StringArrayVar(&editIngredients, "ingredient", nil, "Ingredient (repeatable, replaces all)")
	editCmd.Flags().StringArrayVar(&editSteps, "step", nil, "Preparation step (repeatable, replaces all)")
}
