package pipeline

import "github.com/sarchlab/tc16sim/emu"

// Statistics holds pipeline performance statistics.
type Statistics struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Instructions is the number of instructions that reached execute,
	// including branches and architectural no-ops.
	Instructions uint64
	// Flushes is the number of pipeline flushes caused by taken branches.
	Flushes uint64
}

// CPI returns the cycles per instruction.
func (s Statistics) CPI() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Instructions)
}

// Pipeline models the TC16 3-stage in-order pipeline (IF→ID→EX).
// Every stage takes one cycle; an instruction crosses cycles through the
// single-buffered IF/ID and ID/EX registers. There is no forwarding and
// no stalling: the only hazard handling is the flush a taken branch
// applies to both registers.
type Pipeline struct {
	regFile *emu.RegFile
	memory  *emu.Memory

	fetchStage   *FetchStage
	decodeStage  *DecodeStage
	executeStage *ExecuteStage

	ifid   IFIDRegister
	idex   IDEXRegister
	exView ExecuteSnapshot

	stats Statistics
}

// NewPipeline creates a pipeline over the given architectural state.
func NewPipeline(regFile *emu.RegFile, memory *emu.Memory) *Pipeline {
	return &Pipeline{
		regFile:      regFile,
		memory:       memory,
		fetchStage:   NewFetchStage(memory),
		decodeStage:  NewDecodeStage(regFile),
		executeStage: NewExecuteStage(regFile, memory),
	}
}

// PC returns the current program counter.
func (p *Pipeline) PC() uint16 {
	return p.regFile.PC
}

// SetPC sets the program counter.
func (p *Pipeline) SetPC(pc uint16) {
	p.regFile.PC = pc
}

// GetIFID returns the IF/ID pipeline register.
func (p *Pipeline) GetIFID() *IFIDRegister {
	return &p.ifid
}

// GetIDEX returns the ID/EX pipeline register.
func (p *Pipeline) GetIDEX() *IDEXRegister {
	return &p.idex
}

// GetExecuteView returns the execute-visible snapshot for the most recent
// cycle: the instruction that executed, even if it flushed the live
// registers.
func (p *Pipeline) GetExecuteView() *ExecuteSnapshot {
	return &p.exView
}

// Stats returns pipeline statistics.
func (p *Pipeline) Stats() Statistics {
	return p.stats
}

// Drained returns true once the pipeline has fully emptied: nothing
// executed this cycle, both pipeline registers are invalid, and the PC
// has run past instruction memory. The caller owns termination and
// drives Tick until this holds.
func (p *Pipeline) Drained() bool {
	return !p.exView.Valid && !p.ifid.Valid && !p.idex.Valid &&
		p.regFile.PC >= emu.InstrMemWords
}

// Run ticks the pipeline until it drains.
// Returns the total cycle count. A program that never reaches the end of
// instruction memory (for example a BR spinning on itself) keeps Run
// looping; use RunCycles to bound the simulation.
func (p *Pipeline) Run() uint64 {
	for !p.Drained() {
		p.Tick()
	}
	return p.stats.Cycles
}

// RunCycles ticks the pipeline for at most the specified number of cycles.
// Returns true if still running, false if drained.
func (p *Pipeline) RunCycles(cycles uint64) bool {
	for i := uint64(0); i < cycles && !p.Drained(); i++ {
		p.Tick()
	}
	return !p.Drained()
}

// Tick executes one pipeline cycle.
//
// Stages are evaluated in reverse order (EX→ID→IF) so that each stage
// consumes the latch contents its producer wrote in the previous cycle:
//
//  1. The execute-visible snapshot captures ID/EX before anything runs.
//  2. Execute consumes ID/EX. A taken BEQZ or a BR redirects the PC and
//     invalidates both pipeline registers, squashing the younger
//     instructions in flight. Branches bypass writeback and flags.
//  3. Decode consumes IF/ID, samples the register file, and fills ID/EX.
//  4. Fetch runs only while the PC is inside instruction memory. Fetching
//     the all-zero sentinel pins the PC to 1024 without filling IF/ID and
//     without disturbing the instructions already in flight.
func (p *Pipeline) Tick() {
	p.stats.Cycles++

	p.exView.Capture(&p.idex)

	// Execute stage.
	if p.idex.Valid {
		result := p.executeStage.Execute(&p.idex)
		p.stats.Instructions++
		if result.BranchTaken {
			p.regFile.PC = result.BranchTarget
			p.ifid.Clear()
			p.idex.Clear()
			p.stats.Flushes++
		} else {
			p.idex.Valid = false
		}
	}

	// Decode stage.
	if p.ifid.Valid {
		decoded := p.decodeStage.Decode(p.ifid.InstructionWord)
		p.idex = IDEXRegister{
			Valid:           true,
			PC:              p.ifid.PC,
			InstructionWord: p.ifid.InstructionWord,
			Inst:            decoded.Inst,
			RsValue:         decoded.RsValue,
			RtValue:         decoded.RtValue,
		}
		p.ifid.Valid = false
	}

	// Fetch stage.
	if p.regFile.PC < emu.InstrMemWords {
		word, ok := p.fetchStage.Fetch(p.regFile.PC)
		if !ok {
			p.regFile.PC = emu.InstrMemWords
			return
		}
		p.ifid = IFIDRegister{
			Valid:           true,
			PC:              p.regFile.PC,
			InstructionWord: word,
		}
		p.regFile.PC++
	}
}

// Reset clears the pipeline registers, the statistics, and the
// architectural registers. Memory contents are left intact.
func (p *Pipeline) Reset() {
	p.ifid.Clear()
	p.idex.Clear()
	p.exView.Clear()
	p.stats = Statistics{}
	*p.regFile = emu.RegFile{}
}
