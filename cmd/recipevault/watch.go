package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	lcadapter "github.com/wenhuei/recipevault/pkg/adapters/lifecycle"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream vault change events until interrupted",
	Long: `Watch observes the vault directory and prints an event for every recipe
document created, modified or deleted, whether by this tool or by an
external editor.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := app.Repo.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to watch vault", err)
		}

		source := lcadapter.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Println("Watching vault (ctrl-c to stop)...")
		for e := range source.Events() {
			fmt.Printf("%s  %s\n", time.Now().Format(time.TimeOnly), e.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "*", "Glob filter for watched recipe ids")
}
