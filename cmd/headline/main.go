package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/headlinehq/headline/cmd/headline/cmd"
)

func main() {
	rootCmd := cmd.NewRoot()
	ctx, cancelCtxFn := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelCtxFn()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		// error is already printed by cobra, we only set the exit code
		os.Exit(1)
	}
}
