package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/config"
	"github.com/zhachu16/wdg-pm/internal/printer"
	"github.com/zhachu16/wdg-pm/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the project store for changes",
	Long: `Watch the project index and print a line whenever a project is
added, removed, or changes status. Useful when several people work
against the same store. Stop with Ctrl+C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return printer.Error("failed to load configuration", err.Error(), nil)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	events, err := watch.Watch(ctx, cfg.Storage.IndexFile, cfg.Storage.ProjectsDir)
	if err != nil {
		return printer.Error("failed to start watching", err.Error(), nil)
	}

	printer.Step("Watching %s (Ctrl+C to stop)\n", cfg.Storage.IndexFile)
	for ev := range events {
		printer.Info("%s\n", ev)
	}
	return nil
}
