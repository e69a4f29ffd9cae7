package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const serviceName = "l4d-chat-relay"

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "chat-relay",
	Short:         "Relay Left 4 Dead server chat to a Telegram thread.",
	SilenceUsage:  true,
	SilenceErrors: false,
	Version:       version,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(watermarkCmd)
	rootCmd.AddCommand(tailCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
