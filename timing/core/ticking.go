package core

import (
	"github.com/sarchlab/akita/v4/sim"
)

// TickingCore adapts a Core to the Akita event-driven simulation framework.
// Each engine tick advances the pipeline by one cycle. The component stops
// requesting ticks once the pipeline drains, which lets the engine run out
// of events and return.
type TickingCore struct {
	*sim.TickingComponent

	core *Core
}

// NewTickingCore creates a TickingCore driven by the given engine at the
// given frequency.
func NewTickingCore(
	name string,
	engine sim.Engine,
	freq sim.Freq,
	core *Core,
) *TickingCore {
	c := &TickingCore{core: core}
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)
	return c
}

// Core returns the wrapped core.
func (c *TickingCore) Core() *Core {
	return c.core
}

// Tick advances the core by one cycle. It returns false once the pipeline
// has drained so the engine stops scheduling further ticks.
func (c *TickingCore) Tick() bool {
	if c.core.Drained() {
		return false
	}
	c.core.Tick()
	return !c.core.Drained()
}

// RunOnEngine runs the core to completion on a serial Akita engine at 1GHz.
// It is the event-driven equivalent of Core.Run.
func RunOnEngine(core *Core) error {
	engine := sim.NewSerialEngine()
	tickingCore := NewTickingCore("Core", engine, 1*sim.GHz, core)
	tickingCore.TickLater()
	return engine.Run()
}
