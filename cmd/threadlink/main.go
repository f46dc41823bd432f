package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rcliao/threadlink/internal/cli"
)

func main() {
	// Ctrl-C during the attach prompt (or anywhere else) cancels cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.RootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
