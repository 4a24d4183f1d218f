// Package emu provides functional TC16 emulation.
package emu

import "github.com/sarchlab/tc16sim/insts"

// LoadStoreUnit implements the TC16 data-memory access operations.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a load/store unit over the given state.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

// Load performs Rs = data[imm] and updates SREG from the loaded byte.
func (u *LoadStoreUnit) Load(rs uint8, imm int8) {
	op1 := u.regFile.ReadReg(rs)
	value := u.memory.ReadData(DataAddress(imm))
	u.regFile.WriteReg(rs, value)
	u.regFile.SREG = ComputeFlags(insts.OpLDR, value, op1, uint8(imm))
}

// Store performs data[imm] = Rs. Stores never touch SREG.
func (u *LoadStoreUnit) Store(rs uint8, imm int8) {
	u.memory.WriteData(DataAddress(imm), u.regFile.ReadReg(rs))
}
