// Package pipeline provides a 3-stage pipeline model for cycle-level timing simulation.
package pipeline

import (
	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
)

// FetchStage handles instruction fetch from instruction memory.
type FetchStage struct {
	memory *emu.Memory
}

// NewFetchStage creates a new fetch stage.
func NewFetchStage(memory *emu.Memory) *FetchStage {
	return &FetchStage{memory: memory}
}

// Fetch reads the instruction word at the given PC. The second return
// value is false when the word is the end-of-program sentinel.
func (s *FetchStage) Fetch(pc uint16) (uint16, bool) {
	word := s.memory.ReadInstruction(pc)
	return word, word != insts.SentinelWord
}

// DecodeStage handles instruction decode and register read.
type DecodeStage struct {
	regFile *emu.RegFile
	decoder *insts.Decoder
}

// NewDecodeStage creates a new decode stage.
func NewDecodeStage(regFile *emu.RegFile) *DecodeStage {
	return &DecodeStage{
		regFile: regFile,
		decoder: insts.NewDecoder(),
	}
}

// DecodeResult holds the result of the decode stage.
type DecodeResult struct {
	Inst *insts.Instruction

	// Register values sampled from the register file. For
	// immediate-format instructions RtValue samples R0.
	RsValue uint8
	RtValue uint8
}

// Decode decodes the instruction word and reads the register values.
func (s *DecodeStage) Decode(word uint16) DecodeResult {
	inst := s.decoder.Decode(word)
	return DecodeResult{
		Inst:    inst,
		RsValue: s.regFile.ReadReg(inst.Rs),
		RtValue: s.regFile.ReadReg(inst.Rt),
	}
}

// ExecuteResult holds the control-flow outcome of the execute stage.
type ExecuteResult struct {
	// BranchTaken indicates a taken BEQZ or a BR.
	BranchTaken bool

	// BranchTarget is the redirect PC when BranchTaken is set.
	BranchTarget uint16
}

// ExecuteStage performs ALU operations, data-memory access, register
// writeback, and flag updates.
type ExecuteStage struct {
	regFile *emu.RegFile
	memory  *emu.Memory
}

// NewExecuteStage creates a new execute stage.
func NewExecuteStage(regFile *emu.RegFile, memory *emu.Memory) *ExecuteStage {
	return &ExecuteStage{regFile: regFile, memory: memory}
}

// Execute runs one instruction from the ID/EX register. Architectural
// effects (register writeback, SREG replacement, data-memory writes) are
// applied directly; control-flow outcomes are returned for the pipeline
// to apply.
func (s *ExecuteStage) Execute(idex *IDEXRegister) ExecuteResult {
	inst := idex.Inst
	val1 := idex.RsValue

	var val2 uint8
	if inst.Format == insts.FormatReg {
		val2 = idex.RtValue
	} else {
		val2 = uint8(inst.Imm)
	}

	var result uint8
	switch inst.Op {
	case insts.OpADD:
		result = val1 + val2
	case insts.OpSUB:
		result = val1 - val2
	case insts.OpMUL:
		result = val1 * val2
	case insts.OpMOVI:
		result = uint8(inst.Imm)
	case insts.OpANDI:
		result = val1 & val2
	case insts.OpEOR:
		result = val1 ^ val2
	case insts.OpSAL:
		result = val1 << val2
	case insts.OpSAR:
		result = uint8(int8(val1) >> val2)
	case insts.OpLDR:
		result = s.memory.ReadData(emu.DataAddress(inst.Imm))

	case insts.OpSTR:
		s.memory.WriteData(emu.DataAddress(inst.Imm), val1)
		return ExecuteResult{}

	case insts.OpBEQZ:
		if val1 == 0 {
			return ExecuteResult{
				BranchTaken:  true,
				BranchTarget: emu.BranchTarget(idex.PC, inst.Imm),
			}
		}
		return ExecuteResult{}

	case insts.OpBR:
		return ExecuteResult{
			BranchTaken:  true,
			BranchTarget: emu.JumpTarget(val1, val2),
		}

	default:
		// Unassigned opcode: architectural no-op.
		return ExecuteResult{}
	}

	s.regFile.WriteReg(inst.Rs, result)
	s.regFile.SREG = emu.ComputeFlags(inst.Op, result, val1, val2)
	return ExecuteResult{}
}
