// Package insts provides TC16 instruction definitions, decoding, and encoding.
package insts

import "fmt"

// Op identifies a TC16 operation. The numeric value of an Op is the 4-bit
// opcode field of the instruction word.
type Op uint8

// TC16 opcodes.
const (
	OpADD  Op = 0  // Rs = Rs + Rt
	OpSUB  Op = 1  // Rs = Rs - Rt
	OpMUL  Op = 2  // Rs = Rs * Rt (low 8 bits)
	OpMOVI Op = 3  // Rs = imm
	OpBEQZ Op = 4  // if Rs == 0: PC = PC + 1 + imm
	OpANDI Op = 5  // Rs = Rs & imm
	OpEOR  Op = 6  // Rs = Rs ^ Rt
	OpBR   Op = 7  // PC = (Rs << 8) | Rt
	OpSAL  Op = 8  // Rs = Rs << imm
	OpSAR  Op = 9  // Rs = Rs >> imm (arithmetic)
	OpLDR  Op = 10 // Rs = data[imm]
	OpSTR  Op = 11 // data[imm] = Rs
)

// NumOps is the number of assigned opcodes. Words with an opcode field in
// [NumOps, 16) still decode, but execute as silent no-ops.
const NumOps = 12

// SentinelWord is the reserved all-zero instruction word. Fetching it ends
// the program; the loader refuses to emit it.
const SentinelWord uint16 = 0

var opNames = [NumOps]string{
	OpADD:  "ADD",
	OpSUB:  "SUB",
	OpMUL:  "MUL",
	OpMOVI: "MOVI",
	OpBEQZ: "BEQZ",
	OpANDI: "ANDI",
	OpEOR:  "EOR",
	OpBR:   "BR",
	OpSAL:  "SAL",
	OpSAR:  "SAR",
	OpLDR:  "LDR",
	OpSTR:  "STR",
}

// String returns the assembly mnemonic. Unassigned opcodes render as "???".
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "???"
}

// Format describes how the low 6 bits of an instruction word are
// interpreted.
type Format uint8

const (
	// FormatReg treats the low field as a second register index.
	FormatReg Format = iota

	// FormatImm treats the low field as a 6-bit signed immediate.
	FormatImm
)

// FormatOf returns the operand format of an opcode. Unassigned opcodes fall
// into FormatReg.
func FormatOf(op Op) Format {
	switch op {
	case OpMOVI, OpBEQZ, OpANDI, OpSAL, OpSAR, OpLDR, OpSTR:
		return FormatImm
	default:
		return FormatReg
	}
}

// Instruction represents a decoded TC16 instruction.
type Instruction struct {
	// Op is the operation.
	Op Op

	// Format selects which of Rt and Imm carries the secondary operand.
	Format Format

	// Rs is the primary register index. Every operation that writes a
	// register writes this one.
	Rs uint8

	// Rt is the secondary register index (FormatReg only).
	Rt uint8

	// Imm is the sign-extended 6-bit immediate (FormatImm only).
	Imm int8
}

// String renders the instruction in assembly form.
func (i *Instruction) String() string {
	if i.Format == FormatImm {
		return fmt.Sprintf("%v R%d, %d", i.Op, i.Rs, i.Imm)
	}
	return fmt.Sprintf("%v R%d, R%d", i.Op, i.Rs, i.Rt)
}

// Decoder decodes TC16 instruction words.
type Decoder struct{}

// NewDecoder creates a new instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 16-bit instruction word. Decoding never fails: words
// with an unassigned opcode still produce an Instruction, and the
// execution stages treat those as no-ops.
func (d *Decoder) Decode(word uint16) *Instruction {
	inst := &Instruction{
		Op: Op(word >> 12),
		Rs: uint8((word >> 6) & 0x3F),
	}
	inst.Format = FormatOf(inst.Op)
	if inst.Format == FormatImm {
		inst.Imm = signExtend6(word & 0x3F)
	} else {
		inst.Rt = uint8(word & 0x3F)
	}
	return inst
}

// signExtend6 sign-extends a 6-bit field from bit 5.
func signExtend6(field uint16) int8 {
	return int8(field<<2) >> 2
}
