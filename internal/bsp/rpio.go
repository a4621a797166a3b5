//go:build linux

package bsp

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"
)

// RPIO maps the Raspberry Pi GPIO registers through go-rpio. It needs
// access to /dev/gpiomem or /dev/mem.
type RPIO struct{}

func (RPIO) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rpio.Open(); err != nil {
		return errors.Wrap(ResultMemMapFailed.With(err), "rpio open")
	}
	return nil
}

// Close unmaps the GPIO registers.
func (RPIO) Close() error {
	return rpio.Close()
}

func (RPIO) Name() string { return "rpio" }
