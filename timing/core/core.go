// Package core provides the cycle-level CPU core model.
// It wraps the pipeline implementation to provide a high-level interface.
package core

import (
	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

// Stats holds performance statistics for the core.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Instructions is the number of instructions executed.
	Instructions uint64
	// Flushes is the number of fetched instructions squashed by taken
	// branches.
	Flushes uint64
	// CPI is the average number of cycles per instruction.
	CPI float64
}

// Core represents a cycle-level CPU core model.
// It wraps a 3-stage pipeline and provides a simple interface for simulation.
type Core struct {
	// Pipeline is the underlying 3-stage pipeline.
	Pipeline *pipeline.Pipeline

	// Shared resources
	regFile *emu.RegFile
	memory  *emu.Memory
}

// NewCore creates a new Core with the given register file and memory.
func NewCore(regFile *emu.RegFile, memory *emu.Memory) *Core {
	return &Core{
		Pipeline: pipeline.NewPipeline(regFile, memory),
		regFile:  regFile,
		memory:   memory,
	}
}

// SetPC sets the program counter.
func (c *Core) SetPC(pc uint16) {
	c.Pipeline.SetPC(pc)
}

// Tick executes one pipeline cycle.
func (c *Core) Tick() {
	c.Pipeline.Tick()
}

// Drained returns true once the pipeline has emptied and the PC has run
// past the end of instruction memory.
func (c *Core) Drained() bool {
	return c.Pipeline.Drained()
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	pipeStats := c.Pipeline.Stats()
	return Stats{
		Cycles:       pipeStats.Cycles,
		Instructions: pipeStats.Instructions,
		Flushes:      pipeStats.Flushes,
		CPI:          pipeStats.CPI(),
	}
}

// Run executes the core until the pipeline drains.
// Returns the total cycle count.
func (c *Core) Run() uint64 {
	return c.Pipeline.Run()
}

// RunCycles executes the core for the specified number of cycles.
// Returns true if still running, false if drained.
func (c *Core) RunCycles(cycles uint64) bool {
	return c.Pipeline.RunCycles(cycles)
}

// Reset clears all core state.
func (c *Core) Reset() {
	c.Pipeline.Reset()
}
