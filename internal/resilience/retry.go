package resilience

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Retry reruns fn until it succeeds or attempts run out. Only read paths use
// this; cart/order/admin mutations are single-shot so a slow success is never
// replayed.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			slog.Info("Retrying request...", "attempt", i+1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err = fn()
		if err == nil {
			return nil
		}
	}
	return fmt.Errorf("after %d attempts, last error: %w", attempts, err)
}
