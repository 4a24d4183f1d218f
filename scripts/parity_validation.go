// Package main provides cross-engine validation for TC16Sim.
// The functional emulator and the cycle-level pipeline must agree on the
// final architectural state of every program.
package main

import (
	"fmt"
	"os"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

// testEncodingRoundTrip validates that encoding then decoding recovers
// every field, negative immediates included.
func testEncodingRoundTrip() bool {
	fmt.Println("Testing encode/decode round-trips...")

	decoder := insts.NewDecoder()

	regOps := []insts.Op{insts.OpADD, insts.OpSUB, insts.OpMUL, insts.OpEOR, insts.OpBR}
	for _, op := range regOps {
		for _, rs := range []uint8{0, 1, 31, 63} {
			for _, rt := range []uint8{0, 7, 63} {
				if op == insts.OpADD && rs == 0 && rt == 0 {
					continue // reserved end-of-program word
				}
				inst := decoder.Decode(insts.EncodeReg(op, rs, rt))
				if inst.Op != op || inst.Rs != rs || inst.Rt != rt {
					fmt.Printf("❌ %v R%d R%d did not round-trip\n", op, rs, rt)
					return false
				}
			}
		}
	}

	immOps := []insts.Op{
		insts.OpMOVI, insts.OpBEQZ, insts.OpANDI,
		insts.OpSAL, insts.OpSAR, insts.OpLDR, insts.OpSTR,
	}
	for _, op := range immOps {
		for _, rs := range []uint8{0, 5, 63} {
			for _, imm := range []int8{-32, -1, 0, 1, 31} {
				inst := decoder.Decode(insts.EncodeImm(op, rs, imm))
				if inst.Op != op || inst.Rs != rs || inst.Imm != imm {
					fmt.Printf("❌ %v R%d %d did not round-trip\n", op, rs, imm)
					return false
				}
			}
		}
	}

	fmt.Println("✅ All encodings round-trip, negative immediates included")
	return true
}

// parityProgram is one cross-checked program with optional preloaded data.
type parityProgram struct {
	name  string
	words []uint16
	data  map[uint16]uint8
}

func parityPrograms() []parityProgram {
	return []parityProgram{
		{
			name: "sequential arithmetic",
			words: []uint16{
				insts.EncodeImm(insts.OpMOVI, 1, 5),
				insts.EncodeImm(insts.OpMOVI, 2, 3),
				insts.EncodeReg(insts.OpADD, 1, 2),
			},
		},
		{
			name: "countdown loop",
			words: []uint16{
				insts.EncodeImm(insts.OpMOVI, 1, 3),
				insts.EncodeImm(insts.OpMOVI, 2, 1),
				insts.EncodeImm(insts.OpMOVI, 6, 3),
				insts.EncodeReg(insts.OpSUB, 1, 2),
				insts.EncodeImm(insts.OpBEQZ, 1, 1),
				insts.EncodeReg(insts.OpBR, 0, 6),
				insts.EncodeImm(insts.OpMOVI, 3, 7),
			},
		},
		{
			name: "taken branches",
			words: []uint16{
				insts.EncodeImm(insts.OpMOVI, 2, 1),
				insts.EncodeImm(insts.OpBEQZ, 0, 1),
				insts.EncodeImm(insts.OpMOVI, 5, 9),
				insts.EncodeReg(insts.OpADD, 4, 2),
				insts.EncodeImm(insts.OpBEQZ, 0, 1),
				insts.EncodeImm(insts.OpMOVI, 5, 9),
				insts.EncodeReg(insts.OpADD, 4, 2),
			},
		},
		{
			name: "flag arithmetic",
			words: []uint16{
				insts.EncodeImm(insts.OpMOVI, 1, 31),
				insts.EncodeImm(insts.OpSAL, 1, 3),
				insts.EncodeImm(insts.OpMOVI, 2, 8),
				insts.EncodeReg(insts.OpADD, 1, 2),
				insts.EncodeImm(insts.OpBEQZ, 1, 1),
				insts.EncodeImm(insts.OpMOVI, 4, 9),
				insts.EncodeReg(insts.OpSUB, 3, 2),
			},
		},
		{
			name: "memory copy",
			words: []uint16{
				insts.EncodeImm(insts.OpLDR, 1, 0),
				insts.EncodeImm(insts.OpSTR, 1, 10),
				insts.EncodeImm(insts.OpLDR, 1, 1),
				insts.EncodeImm(insts.OpSTR, 1, 11),
				insts.EncodeImm(insts.OpLDR, 1, 2),
				insts.EncodeImm(insts.OpSTR, 1, 12),
			},
			data: map[uint16]uint8{0: 0x11, 1: 0x22, 2: 0x33},
		},
		{
			name: "shifts and masks",
			words: []uint16{
				insts.EncodeImm(insts.OpMOVI, 1, -1),
				insts.EncodeImm(insts.OpANDI, 1, 15),
				insts.EncodeImm(insts.OpSAL, 1, 2),
				insts.EncodeImm(insts.OpSAR, 1, 1),
				insts.EncodeReg(insts.OpEOR, 2, 1),
				insts.EncodeReg(insts.OpMUL, 1, 2),
			},
		},
	}
}

// testEngineParity runs every parity program through both engines and
// compares the final registers, flags, PC, and data memory.
func testEngineParity() bool {
	fmt.Println("\nTesting emulator/pipeline parity...")

	for i, prog := range parityPrograms() {
		pipeRegs := &emu.RegFile{}
		pipeMem := emu.NewMemory()
		pipeMem.LoadProgram(prog.words)
		for addr, val := range prog.data {
			pipeMem.WriteData(addr, val)
		}
		pipeline.NewPipeline(pipeRegs, pipeMem).Run()

		emuRegs := &emu.RegFile{}
		emuMem := emu.NewMemory()
		emuMem.LoadProgram(prog.words)
		for addr, val := range prog.data {
			emuMem.WriteData(addr, val)
		}
		emu.NewEmulator(emuRegs, emuMem).Run()

		if pipeRegs.R != emuRegs.R || pipeRegs.SREG != emuRegs.SREG || pipeRegs.PC != emuRegs.PC {
			fmt.Printf("❌ Test case %d (%s): final state diverged\n", i, prog.name)
			fmt.Printf("  Pipeline: PC=%d SREG=%v\n", pipeRegs.PC, pipeRegs.SREG)
			fmt.Printf("  Emulator: PC=%d SREG=%v\n", emuRegs.PC, emuRegs.SREG)
			return false
		}

		for addr := uint16(0); addr < emu.DataMemBytes; addr++ {
			if pipeMem.ReadData(addr) != emuMem.ReadData(addr) {
				fmt.Printf("❌ Test case %d (%s): data memory diverged at 0x%04X\n",
					i, prog.name, addr)
				return false
			}
		}

		fmt.Printf("✅ Test case %d (%s): states agree\n", i, prog.name)
	}

	return true
}

// testDataMemoryBounds validates that out-of-range data accesses are
// absorbed without touching state.
func testDataMemoryBounds() bool {
	fmt.Println("\nTesting data memory bounds behavior...")

	memory := emu.NewMemory()
	memory.WriteData(emu.DataMemBytes, 0xAA)
	memory.WriteData(0xFFFF, 0xBB)
	if memory.ReadData(emu.DataMemBytes) != 0 || memory.ReadData(0xFFFF) != 0 {
		fmt.Println("❌ Out-of-range data access was not absorbed")
		return false
	}

	// A store through a negative displacement must be absorbed too.
	regFile := &emu.RegFile{}
	memory.LoadProgram([]uint16{
		insts.EncodeImm(insts.OpMOVI, 1, 7),
		insts.EncodeImm(insts.OpSTR, 1, -1),
		insts.EncodeImm(insts.OpLDR, 2, -1),
	})
	pipeline.NewPipeline(regFile, memory).Run()

	if regFile.ReadReg(2) != 0 {
		fmt.Printf("❌ Load through negative displacement returned %d, want 0\n",
			regFile.ReadReg(2))
		return false
	}

	fmt.Println("✅ Out-of-range accesses read as zero and never mutate memory")
	return true
}

func main() {
	fmt.Println("TC16Sim Parity Validation")
	fmt.Println("=======================================================")

	allPassed := true

	if !testEncodingRoundTrip() {
		allPassed = false
	}
	if !testEngineParity() {
		allPassed = false
	}
	if !testDataMemoryBounds() {
		allPassed = false
	}

	fmt.Println("\n=======================================================")
	if allPassed {
		fmt.Println("🎉 ALL PARITY TESTS PASSED")
		fmt.Println("✅ Both execution engines agree on architectural state")
		os.Exit(0)
	}

	fmt.Println("❌ PARITY TESTS FAILED")
	fmt.Println("🚨 The emulator and the pipeline have diverged")
	os.Exit(1)
}
