// Package main provides the entry point for TC16Sim.
// TC16Sim is a cycle-level simulator for the TC16 processor built on Akita.
//
// For the full CLI, use: go run ./cmd/tc16sim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("TC16Sim - TC16 Processor Simulator")
	fmt.Println("Built on Akita simulation framework")
	fmt.Println("")
	fmt.Println("Usage: tc16sim [options] <program.txt>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -emu         Run in functional emulation mode")
	fmt.Println("  -engine      Drive the pipeline with the event-driven engine")
	fmt.Println("  -trace       Print the per-cycle pipeline table (default true)")
	fmt.Println("  -report      Path to report configuration JSON file")
	fmt.Println("  -max-cycles  Stop after this many cycles")
	fmt.Println("  -v           Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/tc16sim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/tc16sim' instead.")
	}
}
