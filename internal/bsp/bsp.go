// Package bsp brings up the board before any peripheral is touched.
//
// Initialization reports a vendor-style status code. Any value other than
// Success is fatal: callers stop the program and never retry.
package bsp

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Result is a board support status code.
type Result uint32

// Success is the only non-error Result.
const Success Result = 0

// Module identifiers and error codes, laid out as 0xMMMMCCCC.
const (
	ModuleBSP  Result = 0x0100 << 16
	ModuleHost Result = 0x0200 << 16

	ResultClockFailed  = ModuleBSP | 0x01
	ResultPinFailed    = ModuleBSP | 0x02
	ResultHostFailed   = ModuleHost | 0x01
	ResultMemMapFailed = ModuleHost | 0x02
)

// Err converts r into an error, nil for Success.
func (r Result) Err() error {
	if r == Success {
		return nil
	}
	return r
}

// With joins r and the host error that caused it. Both stay reachable
// through errors.Is and errors.As.
func (r Result) With(cause error) error {
	return multierr.Combine(r.Err(), cause)
}

func (r Result) Error() string {
	return fmt.Sprintf("bsp: status 0x%08x", uint32(r))
}

// Board is the board/peripheral initializer.
type Board interface {
	// Init brings up clocks and base peripherals. It is called once.
	Init(ctx context.Context) error
	// Close releases host resources acquired by Init.
	Close() error
	Name() string
}
