package bsp

import (
	"context"
	"sync/atomic"
)

// Sim is a simulated board whose Init returns a fixed status.
type Sim struct {
	status Result
	inits  atomic.Int32
}

func NewSim(status Result) *Sim {
	return &Sim{status: status}
}

func (b *Sim) Init(ctx context.Context) error {
	b.inits.Add(1)
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.status.Err()
}

// Inits returns how many times Init was called.
func (b *Sim) Inits() int {
	return int(b.inits.Load())
}

func (b *Sim) Close() error { return nil }

func (b *Sim) Name() string { return "sim" }
