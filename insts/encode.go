// Package insts provides TC16 instruction definitions, decoding, and encoding.
package insts

// EncodeReg assembles a register-format instruction word.
func EncodeReg(op Op, rs, rt uint8) uint16 {
	return uint16(op)<<12 | uint16(rs&0x3F)<<6 | uint16(rt&0x3F)
}

// EncodeImm assembles an immediate-format instruction word. The immediate
// is truncated to its low 6 bits, which decode back to the same value for
// the representable range -32..31.
func EncodeImm(op Op, rs uint8, imm int8) uint16 {
	return uint16(op)<<12 | uint16(rs&0x3F)<<6 | uint16(uint8(imm)&0x3F)
}

// OpFromMnemonic resolves an assembly mnemonic to its opcode.
func OpFromMnemonic(mnemonic string) (Op, bool) {
	for op := Op(0); op < NumOps; op++ {
		if opNames[op] == mnemonic {
			return op, true
		}
	}
	return 0, false
}
