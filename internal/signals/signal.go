// Package signals ties command contexts to SIGINT and SIGTERM.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithShutdown returns a child of parent that is cancelled when SIGINT or
// SIGTERM arrives. onSignal, when not nil, is called with the signal before
// the context is cancelled. The returned cancel func stops signal delivery
// and must be called once the command finishes.
func WithShutdown(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		select {
		case sig := <-sigChan:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
