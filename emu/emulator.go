// Package emu provides functional TC16 emulation.
package emu

import "github.com/sarchlab/tc16sim/insts"

// Emulator executes TC16 programs functionally, one instruction per step,
// without modeling pipeline timing. It operates on the same architectural
// state types as the timing simulator and produces the same final state
// for any program.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder

	alu *ALU
	lsu *LoadStoreUnit

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithMaxInstructions sets the maximum number of instructions to execute.
// Zero means no limit.
func WithMaxInstructions(limit uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = limit
	}
}

// NewEmulator creates an emulator over the given architectural state.
func NewEmulator(regFile *RegFile, memory *Memory, opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regFile: regFile,
		memory:  memory,
		decoder: insts.NewDecoder(),
		alu:     NewALU(regFile),
		lsu:     NewLoadStoreUnit(regFile, memory),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step executes one instruction. It returns true once the program has
// halted: either the PC ran past instruction memory, or the fetched word
// is the end-of-program sentinel, which pins the PC to 1024.
func (e *Emulator) Step() bool {
	if e.regFile.PC >= InstrMemWords {
		return true
	}
	word := e.memory.ReadInstruction(e.regFile.PC)
	if word == insts.SentinelWord {
		e.regFile.PC = InstrMemWords
		return true
	}

	e.execute(e.decoder.Decode(word))
	e.instructionCount++
	return false
}

// execute dispatches one decoded instruction and advances the PC.
func (e *Emulator) execute(inst *insts.Instruction) {
	pc := e.regFile.PC
	next := pc + 1

	switch inst.Op {
	case insts.OpADD:
		e.alu.Add(inst.Rs, inst.Rt)
	case insts.OpSUB:
		e.alu.Sub(inst.Rs, inst.Rt)
	case insts.OpMUL:
		e.alu.Mul(inst.Rs, inst.Rt)
	case insts.OpMOVI:
		e.alu.Movi(inst.Rs, inst.Imm)
	case insts.OpBEQZ:
		if e.regFile.ReadReg(inst.Rs) == 0 {
			next = BranchTarget(pc, inst.Imm)
		}
	case insts.OpANDI:
		e.alu.Andi(inst.Rs, inst.Imm)
	case insts.OpEOR:
		e.alu.Eor(inst.Rs, inst.Rt)
	case insts.OpBR:
		next = JumpTarget(e.regFile.ReadReg(inst.Rs), e.regFile.ReadReg(inst.Rt))
	case insts.OpSAL:
		e.alu.Sal(inst.Rs, inst.Imm)
	case insts.OpSAR:
		e.alu.Sar(inst.Rs, inst.Imm)
	case insts.OpLDR:
		e.lsu.Load(inst.Rs, inst.Imm)
	case insts.OpSTR:
		e.lsu.Store(inst.Rs, inst.Imm)
	default:
		// Unassigned opcode: architectural no-op.
	}

	e.regFile.PC = next
}

// Run executes instructions until the program halts or the instruction
// limit is reached. It returns the number of instructions executed.
func (e *Emulator) Run() uint64 {
	for {
		if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
			return e.instructionCount
		}
		if e.Step() {
			return e.instructionCount
		}
	}
}

// InstructionCount returns the number of instructions executed so far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}
