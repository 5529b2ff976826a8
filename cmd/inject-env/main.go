package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/anton-fomin/inject-env/internal/cli"
	"github.com/anton-fomin/inject-env/pkg/adapters/osenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signalContext(context.Background())
	defer stop()

	if err := newRootCmd(osenv.New()).ExecuteContext(ctx); err != nil {
		cli.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
