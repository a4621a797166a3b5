package bsp_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/systick-led/internal/bsp"
)

func TestResult(t *testing.T) {
	assert.NoError(t, bsp.Success.Err())

	err := bsp.ResultClockFailed.Err()
	require.Error(t, err)
	assert.Equal(t, "bsp: status 0x01000001", err.Error())

	var res bsp.Result
	require.True(t, errors.As(errors.Wrap(err, "bring-up"), &res))
	assert.Equal(t, bsp.ResultClockFailed, res)
}

func TestResult_With(t *testing.T) {
	cause := errors.New("no /dev/gpiomem")
	err := errors.Wrap(bsp.ResultMemMapFailed.With(cause), "rpio open")

	assert.True(t, errors.Is(err, bsp.ResultMemMapFailed))
	assert.True(t, errors.Is(err, cause), "host error stays reachable")
	var res bsp.Result
	require.True(t, errors.As(err, &res))
	assert.Equal(t, bsp.ResultMemMapFailed, res)

	assert.Equal(t, cause, bsp.Success.With(cause))
}

func TestSim(t *testing.T) {
	ctx := context.Background()

	ok := bsp.NewSim(bsp.Success)
	require.NoError(t, ok.Init(ctx))
	assert.Equal(t, 1, ok.Inits())

	failing := bsp.NewSim(bsp.ResultPinFailed)
	err := failing.Init(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bsp.ResultPinFailed))
	assert.NoError(t, failing.Close())
}

func TestSim_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bsp.NewSim(bsp.Success).Init(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
