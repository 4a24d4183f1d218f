// Package main provides a profiling wrapper for TC16Sim to identify
// performance bottlenecks. TC16 programs drain in a handful of cycles, so
// the wrapper runs the same program repeatedly to build a useful profile.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/loader"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

var (
	emuMode    = flag.Bool("emu", false, "Profile the functional emulator instead of the pipeline")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to file")
	memProfile = flag.String("memprofile", "", "write memory profile to file")
	duration   = flag.Duration("duration", 30*time.Second, "max duration to run")
	iterations = flag.Int("iterations", 100000, "number of simulation runs")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: profile [options] <program.txt>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error starting CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	programPath := flag.Arg(0)

	prog, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded: %s (%d words)\n", programPath, len(prog.Words))

	start := time.Now()
	deadline := start.Add(*duration)

	var cycles, instructions uint64
	runs := 0
	for ; runs < *iterations && time.Now().Before(deadline); runs++ {
		if *emuMode {
			instructions += runEmulationOnce(prog)
		} else {
			c, i := runPipelineOnce(prog)
			cycles += c
			instructions += i
		}
	}

	elapsed := time.Since(start)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating memory profile: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()

		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing memory profile: %v\n", err)
		}
	}

	fmt.Printf("\nProfiling Results:\n")
	fmt.Printf("Runs: %d\n", runs)
	fmt.Printf("Instructions executed: %d\n", instructions)
	fmt.Printf("Elapsed time: %v\n", elapsed)
	if cycles > 0 {
		fmt.Printf("Cycles simulated: %d\n", cycles)
		fmt.Printf("Cycles/second: %.0f\n", float64(cycles)/elapsed.Seconds())
	}
	if instructions > 0 {
		fmt.Printf("Instructions/second: %.0f\n", float64(instructions)/elapsed.Seconds())
	}
}

// runPipelineOnce runs one full pipeline simulation on fresh state.
func runPipelineOnce(prog *loader.Program) (uint64, uint64) {
	regFile := &emu.RegFile{}
	memory := emu.NewMemory()
	memory.LoadProgram(prog.Words)

	pipe := pipeline.NewPipeline(regFile, memory)
	cycles := pipe.Run()
	return cycles, pipe.Stats().Instructions
}

// runEmulationOnce runs one functional emulation pass on fresh state.
func runEmulationOnce(prog *loader.Program) uint64 {
	regFile := &emu.RegFile{}
	memory := emu.NewMemory()
	memory.LoadProgram(prog.Words)

	return emu.NewEmulator(regFile, memory).Run()
}
