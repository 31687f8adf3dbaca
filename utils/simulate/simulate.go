// Package simulate stands in for backend calls that do not exist yet: each round
// trip is a fixed delay bound to the caller's context.
package simulate

import (
	"context"
	"time"
)

// RoundTrip blocks for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when the caller went away, so completion logic never runs for a
// view or request that no longer exists.
func RoundTrip(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
