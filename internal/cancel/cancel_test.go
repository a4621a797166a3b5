package cancel_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/randomizedcoder/systick-led/internal/cancel"
)

func cancelers() []struct {
	name string
	c    cancel.Canceler
} {
	return []struct {
		name string
		c    cancel.Canceler
	}{
		{"Context", cancel.NewContext(context.Background())},
		{"Atomic", cancel.NewAtomic()},
	}
}

func TestCanceler(t *testing.T) {
	for _, tc := range cancelers() {
		t.Run(tc.name, func(t *testing.T) {
			if tc.c.Done() {
				t.Error("expected Done() = false initially")
			}

			tc.c.Cancel()
			if !tc.c.Done() {
				t.Error("expected Done() = true after Cancel()")
			}

			tc.c.Cancel()
			if !tc.c.Done() {
				t.Error("expected Done() = true after second Cancel()")
			}
		})
	}
}

// TestCanceler_StopsSpinningLoop mirrors the polling loop: one goroutine
// spins on Done() while another cancels. Run with -race.
func TestCanceler_StopsSpinningLoop(t *testing.T) {
	for _, tc := range cancelers() {
		t.Run(tc.name, func(t *testing.T) {
			var wg sync.WaitGroup
			spins := make([]int, 4)
			for i := range spins {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for !tc.c.Done() {
						spins[i]++
					}
				}()
			}

			time.Sleep(5 * time.Millisecond)
			tc.c.Cancel()

			stopped := make(chan struct{})
			go func() {
				wg.Wait()
				close(stopped)
			}()
			select {
			case <-stopped:
			case <-time.After(5 * time.Second):
				t.Fatal("spinning goroutines did not observe Cancel()")
			}
		})
	}
}

func TestAtomicCanceler_Reset(t *testing.T) {
	c := cancel.NewAtomic()

	c.Cancel()
	c.Reset()
	if c.Done() {
		t.Error("expected Done() = false after Reset()")
	}
}

func TestContextCanceler_Context(t *testing.T) {
	c := cancel.NewContext(context.Background())
	ctx := c.Context()

	select {
	case <-ctx.Done():
		t.Fatal("expected context to not be done")
	default:
	}

	c.Cancel()

	select {
	case <-ctx.Done():
	default:
		t.Error("expected context to be done after Cancel()")
	}
}

func TestFromContext(t *testing.T) {
	ctx, cancelCtx := context.WithCancel(context.Background())
	c, stop := cancel.FromContext(ctx)
	defer stop()

	if c.Done() {
		t.Error("expected Done() = false before context is cancelled")
	}

	cancelCtx()

	deadline := time.Now().Add(time.Second)
	for !c.Done() {
		if time.Now().After(deadline) {
			t.Fatal("expected Done() = true after context cancellation")
		}
		runtime.Gosched()
	}
}

func TestFromContext_Stop(t *testing.T) {
	ctx, cancelCtx := context.WithCancel(context.Background())
	c, stop := cancel.FromContext(ctx)

	if !stop() {
		t.Error("expected stop() = true before context is cancelled")
	}
	cancelCtx()

	if c.Done() {
		t.Error("expected Done() = false once detached from the context")
	}
}

func TestNew(t *testing.T) {
	for _, kind := range []cancel.Kind{cancel.KindAtomic, "", cancel.KindContext} {
		t.Run(string(kind), func(t *testing.T) {
			ctx, cancelCtx := context.WithCancel(context.Background())
			c, release, err := cancel.New(ctx, kind)
			if err != nil {
				t.Fatalf("New(%q): %v", kind, err)
			}
			defer release()

			if c.Done() {
				t.Error("expected Done() = false before context is cancelled")
			}
			cancelCtx()

			deadline := time.Now().Add(time.Second)
			for !c.Done() {
				if time.Now().After(deadline) {
					t.Fatal("expected Done() = true after context cancellation")
				}
				runtime.Gosched()
			}
		})
	}

	if _, _, err := cancel.New(context.Background(), "spin"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
