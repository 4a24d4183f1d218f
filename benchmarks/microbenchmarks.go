// Package benchmarks provides timing benchmark infrastructure for TC16Sim
// validation.
package benchmarks

import (
	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
)

// GetMicrobenchmarks returns the standard set of microbenchmarks.
// Each benchmark targets a specific pipeline characteristic, and every
// expected cycle count follows from the 3-stage model: a straight-line
// program of N instructions drains in N+3 cycles, and each taken branch
// squashes one fetched instruction.
func GetMicrobenchmarks() []Benchmark {
	return []Benchmark{
		arithmeticSequential(),
		dependencyChain(),
		memorySequential(),
		branchSkip(),
		flagArithmetic(),
		countdownLoop(),
	}
}

// GetCoreBenchmarks returns a minimal set of 3 benchmarks for quick
// validation: a real loop, memory traffic, and branch-heavy code.
func GetCoreBenchmarks() []Benchmark {
	return []Benchmark{
		countdownLoop(),
		memorySequential(),
		branchSkip(),
	}
}

// 1. Arithmetic Sequential - independent MOVI operations, one per cycle
func arithmeticSequential() Benchmark {
	program := make([]uint16, 0, 20)
	for round := 0; round < 4; round++ {
		for reg := uint8(1); reg <= 5; reg++ {
			program = append(program, insts.EncodeImm(insts.OpMOVI, reg, int8(reg)))
		}
	}

	return Benchmark{
		Name:        "arithmetic_sequential",
		Description: "20 independent MOVI operations - measures base throughput",
		Program:     program,
		ExpectedRegisters: map[uint8]uint8{
			1: 1, 2: 2, 3: 3, 4: 4, 5: 5,
		},
		ExpectedCycles: 23,
	}
}

// 2. Dependency Chain - back-to-back ADDs through the same register.
// Decode samples the register file after the previous instruction has
// written back in the same cycle, so the chain still runs at one
// instruction per cycle.
func dependencyChain() Benchmark {
	program := []uint16{insts.EncodeImm(insts.OpMOVI, 2, 1)}
	for i := 0; i < 19; i++ {
		program = append(program, insts.EncodeReg(insts.OpADD, 1, 2))
	}

	return Benchmark{
		Name:        "dependency_chain",
		Description: "19 dependent ADDs (R1 += R2) - measures writeback visibility",
		Program:     program,
		ExpectedRegisters: map[uint8]uint8{
			1: 19,
			2: 1,
		},
		ExpectedCycles: 23,
	}
}

// 3. Memory Sequential - load/store pairs over preloaded data memory
func memorySequential() Benchmark {
	program := make([]uint16, 0, 20)
	for i := int8(0); i < 10; i++ {
		program = append(program,
			insts.EncodeImm(insts.OpLDR, 1, i),
			insts.EncodeImm(insts.OpSTR, 1, 10+i),
		)
	}

	return Benchmark{
		Name:        "memory_sequential",
		Description: "10 load/store pairs copying a preloaded buffer",
		Setup: func(regFile *emu.RegFile, memory *emu.Memory) {
			for i := uint16(0); i < 10; i++ {
				memory.WriteData(i, uint8(10+i))
			}
		},
		Program: program,
		ExpectedRegisters: map[uint8]uint8{
			1: 19,
		},
		ExpectedCycles: 23,
	}
}

// 4. Branch Skip - taken BEQZ branches over a poison instruction.
// R0 is always zero, so every BEQZ is taken and squashes the fetched
// instruction behind it.
func branchSkip() Benchmark {
	program := []uint16{insts.EncodeImm(insts.OpMOVI, 2, 1)}
	for i := 0; i < 5; i++ {
		program = append(program,
			insts.EncodeImm(insts.OpBEQZ, 0, 1),
			insts.EncodeImm(insts.OpMOVI, 5, 9), // squashed
			insts.EncodeReg(insts.OpADD, 4, 2),
		)
	}

	return Benchmark{
		Name:        "branch_skip",
		Description: "5 taken BEQZ branches - measures the 1-cycle squash cost",
		Program:     program,
		ExpectedRegisters: map[uint8]uint8{
			2: 1,
			4: 5,
			5: 0,
		},
		ExpectedCycles: 19,
	}
}

// 5. Flag Arithmetic - carry, overflow, and zero results, ending with a
// branch that depends on a freshly computed register
func flagArithmetic() Benchmark {
	return Benchmark{
		Name:        "flag_arithmetic",
		Description: "shift/add/sub sequence exercising SREG updates",
		Program: []uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 31), // R1 = 0x1F
			insts.EncodeImm(insts.OpSAL, 1, 3),   // R1 = 0xF8
			insts.EncodeImm(insts.OpMOVI, 2, 8),  // R2 = 8
			insts.EncodeReg(insts.OpADD, 1, 2),   // R1 = 0, carry out
			insts.EncodeImm(insts.OpBEQZ, 1, 1),  // taken
			insts.EncodeImm(insts.OpMOVI, 4, 9),  // squashed
			insts.EncodeReg(insts.OpSUB, 3, 2),   // R3 = -8, borrow
		},
		ExpectedRegisters: map[uint8]uint8{
			1: 0,
			2: 8,
			3: 0xF8,
			4: 0,
		},
		ExpectedSREG:   emu.FlagC | emu.FlagN | emu.FlagV,
		CheckSREG:      true,
		ExpectedCycles: 10,
	}
}

// 6. Countdown Loop - a real loop with a backward BR and a BEQZ exit
func countdownLoop() Benchmark {
	return Benchmark{
		Name:        "countdown_loop",
		Description: "3-iteration countdown loop - measures loop branch overhead",
		Program: []uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 3), // counter
			insts.EncodeImm(insts.OpMOVI, 2, 1), // decrement
			insts.EncodeImm(insts.OpMOVI, 6, 3), // loop head address
			insts.EncodeReg(insts.OpSUB, 1, 2),  // loop head
			insts.EncodeImm(insts.OpBEQZ, 1, 1), // exit when R1 hits zero
			insts.EncodeReg(insts.OpBR, 0, 6),   // back to loop head
			insts.EncodeImm(insts.OpMOVI, 3, 7), // exit marker
		},
		ExpectedRegisters: map[uint8]uint8{
			1: 0,
			2: 1,
			3: 7,
			6: 3,
		},
		ExpectedCycles: 18,
	}
}
