// Package emu provides functional TC16 emulation.
package emu

// BranchTarget computes the destination of a taken BEQZ: the word after
// the branch plus the signed offset, wrapping in the 16-bit PC space.
func BranchTarget(pc uint16, imm int8) uint16 {
	return pc + 1 + uint16(int16(imm))
}

// JumpTarget computes the destination of a BR from a register pair:
// the high byte from Rs, the low byte from Rt.
func JumpTarget(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
