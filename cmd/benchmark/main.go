// Command benchmark runs the TC16Sim timing benchmark harness.
//
// Usage:
//
//	go run ./cmd/benchmark [flags]
//
// Flags:
//
//	-csv   Output results in CSV format (default: human-readable)
//	-json  Output a full JSON report
//	-core  Run only the core validation set
//
// Example:
//
//	# Run all benchmarks with human-readable output
//	go run ./cmd/benchmark
//
//	# Output CSV for spreadsheet comparison
//	go run ./cmd/benchmark -csv > results.csv
//
// Every benchmark carries its expected final register values and cycle
// count, so the harness doubles as an end-to-end validation of the
// pipeline model.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/tc16sim/benchmarks"
)

func main() {
	csvOutput := flag.Bool("csv", false, "Output results in CSV format")
	jsonOutput := flag.Bool("json", false, "Output a full JSON report")
	coreOnly := flag.Bool("core", false, "Run only the core validation set")
	verbose := flag.Bool("v", false, "Print progress while running")
	flag.Parse()

	config := benchmarks.DefaultConfig()
	config.Output = os.Stdout
	config.Verbose = *verbose && !*csvOutput && !*jsonOutput

	harness := benchmarks.NewHarness(config)
	if *coreOnly {
		harness.AddBenchmarks(benchmarks.GetCoreBenchmarks())
	} else {
		harness.AddBenchmarks(benchmarks.GetMicrobenchmarks())
	}

	if !*csvOutput && !*jsonOutput {
		fmt.Println("TC16Sim Timing Benchmark Harness")
		fmt.Println("================================")
		fmt.Println("")
	}

	results := harness.RunAll()

	switch {
	case *csvOutput:
		harness.PrintCSV(results)
	case *jsonOutput:
		if err := harness.PrintJSON(results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON report: %v\n", err)
			os.Exit(1)
		}
	default:
		harness.PrintResults(results)

		fmt.Println("=== Summary ===")
		fmt.Println("")
		fmt.Println("Expected characteristics:")
		fmt.Println("- arithmetic_sequential: one instruction per cycle, CPI near 1")
		fmt.Println("- dependency_chain: same-cycle writeback keeps CPI near 1")
		fmt.Println("- memory_sequential: single-cycle loads and stores")
		fmt.Println("- branch_skip: one squashed fetch per taken branch")
		fmt.Println("- flag_arithmetic: carry and overflow visible in final SREG")
		fmt.Println("- countdown_loop: loop overhead pushes CPI to 1.5")
	}

	// A failed validation means the pipeline model is wrong.
	for _, r := range results {
		if !r.Validated {
			fmt.Fprintf(os.Stderr, "benchmark %s failed validation\n", r.Name)
			os.Exit(1)
		}
	}
}
