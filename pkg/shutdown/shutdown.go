package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case <-ch:
			cancel()
		}
	}()

	return ctx, cancel
}

// Graceful runs stop and waits up to timeout for it to return. When the
// deadline passes first, force runs and Graceful reports false.
func Graceful(timeout time.Duration, stop func(), force func()) bool {
	done := make(chan struct{})
	go func() {
		stop()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		force()
		<-done
		return false
	}
}
