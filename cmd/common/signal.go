package common

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// InterruptContext is cancelled on Ctrl+C or SIGTERM.
func InterruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
