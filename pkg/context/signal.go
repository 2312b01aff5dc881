// Package context cancels command contexts on OS signals.
package context

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// WithSignal returns a context that is cancelled when one of sigs arrives.
// The returned cancel func must be called to stop listening.
func WithSignal(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return watch(ctx, cancel, sigs)
}

func watch(ctx context.Context, cancel context.CancelFunc, sigs []os.Signal) (context.Context, context.CancelFunc) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	stopCh := make(chan struct{})
	go func() {
		select {
		case <-ch:
			cancel()
		case <-stopCh:
		case <-ctx.Done():
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(ch)
			cancel()
			close(stopCh)
		})
	}
}
