package gpio

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// SimPin is an in-memory pin. Its level and invert count can be read from
// any goroutine.
type SimPin struct {
	id         ID
	level      atomic.Bool
	inversions atomic.Uint64
	configured atomic.Bool
}

func NewSim(id ID) *SimPin {
	return &SimPin{id: id}
}

func (p *SimPin) Configure(cfg Config) error {
	if cfg.Direction != Output {
		return errors.Wrapf(ErrNotOutput, "%s", p.id)
	}
	p.level.Store(bool(cfg.Initial))
	p.configured.Store(true)
	return nil
}

func (p *SimPin) Invert() {
	for {
		old := p.level.Load()
		if p.level.CompareAndSwap(old, !old) {
			break
		}
	}
	p.inversions.Add(1)
}

func (p *SimPin) Level() Level {
	return Level(p.level.Load())
}

// Inversions returns how many times Invert has been called.
func (p *SimPin) Inversions() uint64 {
	return p.inversions.Load()
}

// Configured reports whether Configure has succeeded.
func (p *SimPin) Configured() bool {
	return p.configured.Load()
}

func (p *SimPin) Name() string {
	return "sim:" + p.id.String()
}

func (p *SimPin) Close() error {
	return nil
}
