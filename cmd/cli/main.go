package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "firstaidvox",
		Short:        "First-aid triage from the terminal",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(getChatCommand())
	rootCmd.AddCommand(getFacilitiesCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
