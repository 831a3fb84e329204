package repokit

import (
	"context"
	"errors"
	"testing"
	"time"

	"mastoshim/internal/platform/testkit"
)

type guardFunc func(context.Context) error

func (g guardFunc) Guard(ctx context.Context) error { return g(ctx) }

func TestMustGuard_PanicsWithCause(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	r := testkit.MustPanic(t, func() {
		MustGuard(context.Background(), guardFunc(func(context.Context) error { return boom }))
	})
	if err, ok := r.(error); !ok || !errors.Is(err, boom) {
		t.Fatalf("panic value %v", r)
	}
}

func TestMustGuard_AddsDeadline(t *testing.T) {
	t.Parallel()

	var dl time.Time
	MustGuard(context.Background(), guardFunc(func(ctx context.Context) error {
		dl, _ = ctx.Deadline()
		return nil
	}))
	if dl.IsZero() || time.Until(dl) > startupGuardTimeout {
		t.Fatalf("deadline %v", dl)
	}
}

func TestMustGuard_KeepsCallerDeadline(t *testing.T) {
	t.Parallel()

	want := time.Now().Add(time.Minute)
	ctx, cancel := context.WithDeadline(context.Background(), want)
	defer cancel()

	MustGuard(ctx, guardFunc(func(ctx context.Context) error {
		if got, _ := ctx.Deadline(); !got.Equal(want) {
			t.Fatalf("deadline %v want %v", got, want)
		}
		return nil
	}))
}
