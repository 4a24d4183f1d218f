// Validate decode-stage cost - measures time and allocations per decode
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

func main() {
	regFile := &emu.RegFile{}
	decodeStage := pipeline.NewDecodeStage(regFile)

	// One word from each format family
	words := []uint16{
		insts.EncodeImm(insts.OpMOVI, 1, 21), // MOVI R1, 21
		insts.EncodeReg(insts.OpADD, 1, 2),   // ADD R1, R2
		insts.EncodeImm(insts.OpBEQZ, 1, -4), // BEQZ R1, -4
		insts.EncodeImm(insts.OpLDR, 3, 10),  // LDR R3, 10
	}

	// Spot-check the decodings before measuring anything
	expected := []string{"MOVI R1, 21", "ADD R1, R2", "BEQZ R1, -4", "LDR R3, 10"}
	for i, word := range words {
		if got := decodeStage.Decode(word).Inst.String(); got != expected[i] {
			fmt.Printf("decode mismatch for 0x%04X: got %q, want %q\n", word, got, expected[i])
			os.Exit(1)
		}
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		decodeStage.Decode(words[0])
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	for i := 0; i < iterations; i++ {
		for _, word := range words {
			decodeStage.Decode(word)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(words)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decode Stage Validation Results:\n")
	fmt.Printf("================================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	rate := float64(allocations) / float64(totalDecodes)
	if rate <= 1.0 {
		fmt.Printf("\n✅ Expected allocation rate (at most one Instruction per decode)\n")
	} else {
		fmt.Printf("\n⚠️  WARNING: Unexpected extra allocations per decode\n")
	}
}
