package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	appLog "widgetgen/internal/log"
)

const version = "0.1.0"

func main() {
	// Root context with cancellation on SIGINT/SIGTERM. Only the preview ICS
	// fetch blocks long enough to care.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		appLog.Error("widgetgen failed", err)
		appLog.Sync()
		os.Exit(1)
	}
	appLog.Sync()
}
