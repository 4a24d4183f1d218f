// Package emu provides functional TC16 emulation.
package emu

// NumRegs is the number of general-purpose registers.
const NumRegs = 64

// RegFile represents the TC16 register file.
// It contains 64 general-purpose 8-bit registers (R0-R63), the 16-bit
// program counter, and the SREG status register.
type RegFile struct {
	// R holds general-purpose registers R0-R63.
	// R[0] is the zero register: writes to it are silently discarded.
	R [NumRegs]uint8

	// PC is the program counter. A value of 1024 (one past the last
	// instruction-memory word) means the program has ended.
	PC uint16

	// SREG holds the status flags.
	SREG SREG
}

// ReadReg reads a register value. Out-of-range indices return 0.
func (r *RegFile) ReadReg(reg uint8) uint8 {
	if reg >= NumRegs {
		return 0
	}
	return r.R[reg]
}

// WriteReg writes a value to a register. Writes to R0 and to out-of-range
// indices are discarded.
func (r *RegFile) WriteReg(reg uint8, value uint8) {
	if reg == 0 || reg >= NumRegs {
		return
	}
	r.R[reg] = value
}

// SREG represents the 8-bit status register. Bits 5-7 are unused and
// always read as zero.
type SREG uint8

// SREG flag bits.
const (
	// FlagS is the sign flag, N xor V.
	FlagS SREG = 1 << 0
	// FlagN is the negative flag (bit 7 of the result).
	FlagN SREG = 1 << 1
	// FlagV is the two's-complement overflow flag.
	FlagV SREG = 1 << 2
	// FlagC is the carry flag (carry out of bit 7).
	FlagC SREG = 1 << 3
	// FlagZ is the zero flag.
	FlagZ SREG = 1 << 4
)

// Sign reports the S flag.
func (s SREG) Sign() bool { return s&FlagS != 0 }

// Negative reports the N flag.
func (s SREG) Negative() bool { return s&FlagN != 0 }

// Overflow reports the V flag.
func (s SREG) Overflow() bool { return s&FlagV != 0 }

// Carry reports the C flag.
func (s SREG) Carry() bool { return s&FlagC != 0 }

// Zero reports the Z flag.
func (s SREG) Zero() bool { return s&FlagZ != 0 }

// String renders the flags as [CVNSZ], with '-' for clear bits.
func (s SREG) String() string {
	flags := [5]byte{'-', '-', '-', '-', '-'}
	if s.Carry() {
		flags[0] = 'C'
	}
	if s.Overflow() {
		flags[1] = 'V'
	}
	if s.Negative() {
		flags[2] = 'N'
	}
	if s.Sign() {
		flags[3] = 'S'
	}
	if s.Zero() {
		flags[4] = 'Z'
	}
	return "[" + string(flags[:]) + "]"
}
