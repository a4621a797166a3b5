package bsp

import (
	"context"

	"github.com/pkg/errors"
	"periph.io/x/host/v3"
)

// Periph initializes the host GPIO drivers through periph.io.
type Periph struct{}

func (Periph) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := host.Init(); err != nil {
		return errors.Wrap(ResultHostFailed.With(err), "periph host init")
	}
	return nil
}

func (Periph) Close() error { return nil }

func (Periph) Name() string { return "periph" }
