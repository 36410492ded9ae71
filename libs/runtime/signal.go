package runtime

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalContext cancels on SIGINT/SIGTERM. A second signal bypasses graceful
// shutdown and exits immediately, for operators who do not want to wait out
// the drain.
func SignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-ctx.Done()
		second := make(chan os.Signal, 1)
		signal.Notify(second, syscall.SIGINT, syscall.SIGTERM)
		<-second
		os.Exit(1)
	}()

	return ctx, cancel
}
