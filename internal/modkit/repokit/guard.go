package repokit

import (
	"context"
	"fmt"
	"time"
)

// startupGuardTimeout bounds the guard when ctx has no deadline
const startupGuardTimeout = 10 * time.Second

type guarder interface {
	Guard(context.Context) error
}

// MustGuard pings the lookup database and panics when it is unreachable; startup only
func MustGuard(ctx context.Context, st guarder) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, startupGuardTimeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("lookup database guard failed: %w", err))
	}
}
