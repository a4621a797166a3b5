package tick_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/randomizedcoder/systick-led/internal/tick"
)

func TestStdTicker(t *testing.T) {
	interval := 50 * time.Millisecond
	ticker := tick.NewTicker(interval)
	defer ticker.Stop()

	// Should not tick immediately
	if ticker.Tick() {
		t.Error("expected Tick() = false immediately after creation")
	}

	time.Sleep(interval + 20*time.Millisecond)

	if !ticker.Tick() {
		t.Error("expected Tick() = true after interval elapsed")
	}

	// Should not tick again immediately
	if ticker.Tick() {
		t.Error("expected Tick() = false immediately after tick")
	}
}

func TestStdTicker_C(t *testing.T) {
	interval := 10 * time.Millisecond
	ticker := tick.NewTicker(interval)
	defer ticker.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-ticker.C():
		case <-time.After(time.Second):
			t.Fatalf("no period delivered on C() after %d ticks", i)
		}
	}
}

func TestAtomicTicker(t *testing.T) {
	interval := 50 * time.Millisecond
	ticker := tick.NewAtomicTicker(interval)
	defer ticker.Stop()

	if ticker.Tick() {
		t.Error("expected Tick() = false immediately after creation")
	}

	time.Sleep(interval + 20*time.Millisecond)

	if !ticker.Tick() {
		t.Error("expected Tick() = true after interval elapsed")
	}

	if ticker.Tick() {
		t.Error("expected Tick() = false immediately after tick")
	}
}

func TestAtomicTicker_Reset(t *testing.T) {
	interval := 50 * time.Millisecond
	ticker := tick.NewAtomicTicker(interval)
	defer ticker.Stop()

	time.Sleep(interval + 20*time.Millisecond)
	if !ticker.Tick() {
		t.Error("expected Tick() = true after interval")
	}

	ticker.Reset()

	if ticker.Tick() {
		t.Error("expected Tick() = false after Reset()")
	}
}

func TestBatchTicker(t *testing.T) {
	interval := 50 * time.Millisecond
	every := 10
	ticker := tick.NewBatch(interval, every)
	defer ticker.Stop()

	// First 9 calls should not tick (regardless of time)
	for i := 0; i < every-1; i++ {
		if ticker.Tick() {
			t.Errorf("expected Tick() = false on call %d (before batch)", i+1)
		}
	}

	// 10th call checks time - but interval hasn't passed
	if ticker.Tick() {
		t.Error("expected Tick() = false before interval elapsed")
	}

	time.Sleep(interval + 20*time.Millisecond)

	for i := 0; i < every-1; i++ {
		ticker.Tick()
	}

	if !ticker.Tick() {
		t.Error("expected Tick() = true after interval elapsed and batch complete")
	}
}

func TestBatchTicker_Every(t *testing.T) {
	if got := tick.NewBatch(time.Second, 100).Every(); got != 100 {
		t.Errorf("expected Every() = 100, got %d", got)
	}
	if got := tick.NewBatch(time.Second, 0).Every(); got != 1 {
		t.Errorf("expected Every() = 1 for non-positive batch, got %d", got)
	}
}

func TestNew(t *testing.T) {
	interval := 50 * time.Millisecond

	testCases := []struct {
		kind tick.Kind
		want string
	}{
		{tick.KindStd, "*tick.StdTicker"},
		{tick.KindAtomic, "*tick.AtomicTicker"},
		{"", "*tick.AtomicTicker"},
		{tick.KindBatch, "*tick.BatchTicker"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			ticker, err := tick.New(tc.kind, interval, 1)
			if err != nil {
				t.Fatalf("New(%q): %v", tc.kind, err)
			}
			defer ticker.Stop()

			if got := fmt.Sprintf("%T", ticker); got != tc.want {
				t.Errorf("New(%q) = %s, want %s", tc.kind, got, tc.want)
			}

			if ticker.Tick() {
				t.Error("expected Tick() = false immediately")
			}

			time.Sleep(interval + 20*time.Millisecond)

			if !ticker.Tick() {
				t.Error("expected Tick() = true after interval")
			}
		})
	}

	if _, err := tick.New("tsc", interval, 1); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestPolledTickers_DefaultInterval(t *testing.T) {
	if got := tick.NewAtomicTicker(0).Interval(); got != tick.DefaultInterval {
		t.Errorf("AtomicTicker: expected Interval() = %s, got %s", tick.DefaultInterval, got)
	}
	if got := tick.NewBatch(-time.Second, 8).Interval(); got != tick.DefaultInterval {
		t.Errorf("BatchTicker: expected Interval() = %s, got %s", tick.DefaultInterval, got)
	}
}

func TestPolledTickers_Fired(t *testing.T) {
	interval := 10 * time.Millisecond
	a := tick.NewAtomicTicker(interval)
	b := tick.NewBatch(interval, 1)

	for i := 0; i < 2; i++ {
		time.Sleep(interval + 5*time.Millisecond)
		if !a.Tick() {
			t.Errorf("AtomicTicker: expected tick %d", i+1)
		}
		if !b.Tick() {
			t.Errorf("BatchTicker: expected tick %d", i+1)
		}
	}
	if a.Tick() || b.Tick() {
		t.Error("expected no tick right after a reported one")
	}

	if got := a.Fired(); got != 2 {
		t.Errorf("AtomicTicker: expected Fired() = 2, got %d", got)
	}
	if got := b.Fired(); got != 2 {
		t.Errorf("BatchTicker: expected Fired() = 2, got %d", got)
	}
}
