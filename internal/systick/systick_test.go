package systick_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/systick-led/internal/board"
	"github.com/randomizedcoder/systick-led/internal/systick"
)

type clocks map[board.Clock]uint64

func (c clocks) ClockHz(src board.Clock) uint64 { return c[src] }

// 1 kHz CPU clock: a reload of 1 gives a 1ms period.
var benchClocks = clocks{systick.ClockCPU: 1000, systick.ClockLF: 32768}

func TestInit(t *testing.T) {
	tm := systick.New(clocks{systick.ClockCPU: 100_000_000}, nil)

	require.NoError(t, tm.Init(systick.ClockCPU, 10_000_000))
	assert.Equal(t, uint32(10_000_000), tm.Reload())
	assert.Equal(t, 100*time.Millisecond, tm.Period())
	assert.Equal(t, systick.ClockCPU, tm.Source())
}

func TestInit_Errors(t *testing.T) {
	tm := systick.New(benchClocks, nil)

	for _, reload := range []uint32{0, systick.MaxReload + 1} {
		err := tm.Init(systick.ClockCPU, reload)
		assert.True(t, errors.Is(err, systick.ErrReload), "reload %d: %v", reload, err)
	}
	require.NoError(t, tm.Init(systick.ClockCPU, systick.MaxReload))

	err := tm.Init(systick.ClockECO, 1)
	assert.True(t, errors.Is(err, systick.ErrClockUnavailable), "%v", err)
}

func TestSetCallback(t *testing.T) {
	tm := systick.New(benchClocks, nil)

	var a, b atomic.Int32
	first := systick.HandlerFunc(func() { a.Add(1) })

	prev, err := tm.SetCallback(0, first)
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.NotNil(t, tm.Callback(0))

	prev, err = tm.SetCallback(0, systick.HandlerFunc(func() { b.Add(1) }))
	require.NoError(t, err)
	assert.NotNil(t, prev)

	tm.Fire()
	assert.Equal(t, int32(0), a.Load(), "replaced handler must not run")
	assert.Equal(t, int32(1), b.Load())

	for _, index := range []int{-1, systick.NumCallbacks} {
		_, err := tm.SetCallback(index, first)
		assert.True(t, errors.Is(err, systick.ErrCallbackIndex), "index %d: %v", index, err)
	}
	assert.Nil(t, tm.Callback(systick.NumCallbacks))
}

func TestFire_SlotOrder(t *testing.T) {
	tm := systick.New(benchClocks, nil)

	var order []int
	for _, slot := range []int{3, 0, 1} {
		_, err := tm.SetCallback(slot, systick.HandlerFunc(func() { order = append(order, slot) }))
		require.NoError(t, err)
	}

	tm.Fire()
	assert.Equal(t, []int{0, 1, 3}, order)
	assert.Equal(t, uint64(1), tm.Fired())
}

func TestEnable_NotInitialized(t *testing.T) {
	tm := systick.New(benchClocks, nil)
	assert.Equal(t, systick.ErrNotInitialized, tm.Enable())
	assert.False(t, tm.Enabled())
}

func TestEnableDisable(t *testing.T) {
	tm := systick.New(benchClocks, nil)
	require.NoError(t, tm.Init(systick.ClockCPU, 1))

	var n atomic.Int64
	_, err := tm.SetCallback(0, systick.HandlerFunc(func() { n.Add(1) }))
	require.NoError(t, err)

	require.NoError(t, tm.Enable())
	require.NoError(t, tm.Enable())
	assert.True(t, tm.Enabled())

	require.Eventually(t, func() bool { return n.Load() >= 5 }, 2*time.Second, time.Millisecond)

	tm.Disable()
	assert.False(t, tm.Enabled())
	stopped := n.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, n.Load(), "no interrupts after Disable")
	assert.Equal(t, uint64(stopped), tm.Fired())

	// Disable is idempotent.
	tm.Disable()
}

func TestInit_WhileEnabled(t *testing.T) {
	tm := systick.New(benchClocks, nil)
	require.NoError(t, tm.Init(systick.ClockCPU, 1000))
	require.NoError(t, tm.Enable())
	defer tm.Disable()

	err := tm.Init(systick.ClockLF, 32768)
	assert.True(t, errors.Is(err, systick.ErrEnabled), "%v", err)
	assert.Equal(t, systick.ClockCPU, tm.Source())
	assert.Equal(t, time.Second, tm.Period())

	tm.Disable()
	require.NoError(t, tm.Init(systick.ClockLF, 32768))
	assert.Equal(t, time.Second, tm.Period())
	assert.Equal(t, systick.ClockLF, tm.Source())
}
