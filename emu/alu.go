// Package emu provides functional TC16 emulation.
package emu

import "github.com/sarchlab/tc16sim/insts"

// ComputeFlags computes the full SREG replacement value for a flag-writing
// operation. Z and N derive from the result for every operation; C, V, and
// S are additionally computed for ADD and SUB. The returned value replaces
// SREG as a whole, clearing every flag the operation does not set.
func ComputeFlags(op insts.Op, result, val1, val2 uint8) SREG {
	var s SREG
	if result == 0 {
		s |= FlagZ
	}
	if result&0x80 != 0 {
		s |= FlagN
	}
	if op == insts.OpADD || op == insts.OpSUB {
		var wide uint16
		if op == insts.OpADD {
			wide = uint16(val1) + uint16(val2)
		} else {
			wide = uint16(int16(int8(val1)) - int16(int8(val2)))
		}
		if wide&0x100 != 0 {
			s |= FlagC
		}
		if ((val1^result)&(val2^result))&0x80 != 0 {
			s |= FlagV
		}
		if s.Negative() != s.Overflow() {
			s |= FlagS
		}
	}
	return s
}

// WritesFlags reports whether an opcode updates SREG. Branches, stores,
// and unassigned opcodes leave SREG untouched.
func WritesFlags(op insts.Op) bool {
	switch op {
	case insts.OpADD, insts.OpSUB, insts.OpMUL, insts.OpMOVI,
		insts.OpANDI, insts.OpEOR, insts.OpSAL, insts.OpSAR, insts.OpLDR:
		return true
	default:
		return false
	}
}

// ALU implements the TC16 arithmetic and logic operations.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// Add performs Rs = Rs + Rt and updates SREG.
func (a *ALU) Add(rs, rt uint8) {
	op1 := a.regFile.ReadReg(rs)
	op2 := a.regFile.ReadReg(rt)
	result := op1 + op2
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpADD, result, op1, op2)
}

// Sub performs Rs = Rs - Rt and updates SREG.
func (a *ALU) Sub(rs, rt uint8) {
	op1 := a.regFile.ReadReg(rs)
	op2 := a.regFile.ReadReg(rt)
	result := op1 - op2
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpSUB, result, op1, op2)
}

// Mul performs Rs = Rs * Rt, keeping the low 8 bits, and updates SREG.
func (a *ALU) Mul(rs, rt uint8) {
	op1 := a.regFile.ReadReg(rs)
	op2 := a.regFile.ReadReg(rt)
	result := op1 * op2
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpMUL, result, op1, op2)
}

// Movi performs Rs = imm and updates SREG.
func (a *ALU) Movi(rs uint8, imm int8) {
	op1 := a.regFile.ReadReg(rs)
	result := uint8(imm)
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpMOVI, result, op1, uint8(imm))
}

// Andi performs Rs = Rs & imm and updates SREG.
func (a *ALU) Andi(rs uint8, imm int8) {
	op1 := a.regFile.ReadReg(rs)
	result := op1 & uint8(imm)
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpANDI, result, op1, uint8(imm))
}

// Eor performs Rs = Rs ^ Rt and updates SREG.
func (a *ALU) Eor(rs, rt uint8) {
	op1 := a.regFile.ReadReg(rs)
	op2 := a.regFile.ReadReg(rt)
	result := op1 ^ op2
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpEOR, result, op1, op2)
}

// Sal performs Rs = Rs << imm and updates SREG. The shift amount is the
// immediate reinterpreted as unsigned; amounts of 8 or more shift out
// every bit.
func (a *ALU) Sal(rs uint8, imm int8) {
	op1 := a.regFile.ReadReg(rs)
	result := op1 << uint8(imm)
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpSAL, result, op1, uint8(imm))
}

// Sar performs Rs = Rs >> imm arithmetically and updates SREG. The shift
// amount is the immediate reinterpreted as unsigned; amounts of 8 or more
// fill the result with the sign bit.
func (a *ALU) Sar(rs uint8, imm int8) {
	op1 := a.regFile.ReadReg(rs)
	result := uint8(int8(op1) >> uint8(imm))
	a.regFile.WriteReg(rs, result)
	a.regFile.SREG = ComputeFlags(insts.OpSAR, result, op1, uint8(imm))
}
