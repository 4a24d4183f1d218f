// Package emu provides functional TC16 emulation.
package emu

// Memory sizes of the modeled machine.
const (
	// InstrMemWords is the instruction memory size in 16-bit words. It is
	// also the PC value that marks the end of the program.
	InstrMemWords = 1024

	// DataMemBytes is the data memory size in bytes.
	DataMemBytes = 2048
)

// Memory represents the TC16 memory system: a word-addressed instruction
// memory and a byte-addressed data memory in separate address spaces.
// Data accesses outside the data memory absorb silently, reading as zero
// and dropping writes.
type Memory struct {
	instr [InstrMemWords]uint16
	data  [DataMemBytes]uint8
}

// NewMemory creates a new zeroed memory.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadInstruction reads an instruction word. Out-of-range addresses return
// the all-zero sentinel word.
func (m *Memory) ReadInstruction(addr uint16) uint16 {
	if addr >= InstrMemWords {
		return 0
	}
	return m.instr[addr]
}

// WriteInstruction stores an instruction word. Out-of-range writes are
// dropped.
func (m *Memory) WriteInstruction(addr uint16, word uint16) {
	if addr >= InstrMemWords {
		return
	}
	m.instr[addr] = word
}

// ReadData reads a data byte. Out-of-range addresses read as 0.
func (m *Memory) ReadData(addr uint16) uint8 {
	if addr >= DataMemBytes {
		return 0
	}
	return m.data[addr]
}

// WriteData stores a data byte. Out-of-range writes are dropped.
func (m *Memory) WriteData(addr uint16, value uint8) {
	if addr >= DataMemBytes {
		return
	}
	m.data[addr] = value
}

// LoadProgram copies an assembled program into instruction memory starting
// at word 0. Words beyond the instruction memory capacity are ignored.
func (m *Memory) LoadProgram(words []uint16) {
	for i, w := range words {
		if i >= InstrMemWords {
			return
		}
		m.instr[i] = w
	}
}

// DataAddress converts a sign-extended address immediate to the unsigned
// 16-bit address space. Negative immediates land far above the data memory
// limit, so they absorb like any other out-of-range access.
func DataAddress(imm int8) uint16 {
	return uint16(int16(imm))
}
