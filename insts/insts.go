// Package insts provides TC16 instruction definitions, decoding, and encoding.
//
// This package implements decoding of 16-bit TC16 instruction words into
// structured instruction representations. It supports:
//   - Register-format arithmetic and logic: ADD, SUB, MUL, EOR
//   - Immediate-format operations: MOVI, ANDI, SAL, SAR
//   - Memory access: LDR, STR
//   - Branches: BEQZ (relative), BR (register pair)
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x3045) // MOVI R1, 5
//	fmt.Printf("Op: %v, Rs: %d, Imm: %d\n", inst.Op, inst.Rs, inst.Imm)
package insts
