// Package pipeline provides the 3-stage pipeline implementation for timing simulation.
package pipeline

import "github.com/sarchlab/tc16sim/insts"

// IFIDRegister holds state between the Fetch and Decode stages.
type IFIDRegister struct {
	// Valid indicates if this pipeline register contains valid data.
	Valid bool

	// PC is the program counter of the fetched instruction.
	PC uint16

	// InstructionWord is the raw 16-bit instruction word.
	InstructionWord uint16
}

// Clear resets the IF/ID register to empty state.
func (r *IFIDRegister) Clear() {
	r.Valid = false
	r.PC = 0
	r.InstructionWord = 0
}

// IDEXRegister holds state between the Decode and Execute stages.
type IDEXRegister struct {
	// Valid indicates if this pipeline register contains valid data.
	Valid bool

	// PC is the program counter of the instruction.
	PC uint16

	// InstructionWord is the raw 16-bit instruction word.
	InstructionWord uint16

	// Inst is the decoded instruction.
	Inst *insts.Instruction

	// Register values sampled at decode time. RtValue carries R0 for
	// immediate-format instructions and must not be used for them.
	RsValue uint8
	RtValue uint8
}

// Clear resets the ID/EX register to empty state.
func (r *IDEXRegister) Clear() {
	r.Valid = false
	r.PC = 0
	r.InstructionWord = 0
	r.Inst = nil
	r.RsValue = 0
	r.RtValue = 0
}

// ExecuteSnapshot is the execute-visible view of the ID/EX register,
// captured at the top of each cycle before the execute stage runs. It
// identifies the instruction executing in the current cycle, surviving
// the flush a taken branch applies to the live latches.
type ExecuteSnapshot struct {
	// Valid indicates whether an instruction executes this cycle.
	Valid bool

	// PC is the program counter of the executing instruction.
	PC uint16

	// InstructionWord is the raw 16-bit instruction word.
	InstructionWord uint16
}

// Capture copies the identifying fields of the ID/EX register.
func (s *ExecuteSnapshot) Capture(r *IDEXRegister) {
	s.Valid = r.Valid
	s.PC = r.PC
	s.InstructionWord = r.InstructionWord
}

// Clear resets the snapshot to empty state.
func (s *ExecuteSnapshot) Clear() {
	s.Valid = false
	s.PC = 0
	s.InstructionWord = 0
}
