// Package main provides the entry point for TC16Sim.
// TC16Sim is a cycle-level simulator for the TC16 processor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/loader"
	"github.com/sarchlab/tc16sim/report"
	"github.com/sarchlab/tc16sim/timing/core"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

var (
	emuMode    = flag.Bool("emu", false, "Run in functional emulation mode")
	engineMode = flag.Bool("engine", false, "Drive the pipeline with the event-driven engine")
	trace      = flag.Bool("trace", true, "Print the per-cycle pipeline table")
	reportPath = flag.String("report", "", "Path to report configuration JSON file")
	maxCycles  = flag.Uint64("max-cycles", 0, "Stop after this many cycles (0 means no limit)")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tc16sim [options] <program.txt>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	programPath := flag.Arg(0)

	prog, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", programPath)
		fmt.Printf("Program words: %d\n", len(prog.Words))
	}

	if *emuMode {
		os.Exit(runEmulation(prog))
	}
	os.Exit(runPipeline(prog))
}

// reportConfig resolves the reporter configuration. A config file wins over
// the -trace switch.
func reportConfig() *report.Config {
	if *reportPath == "" {
		config := report.DefaultConfig()
		config.ShowPipeline = *trace
		return config
	}

	config, err := report.LoadConfig(*reportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading report config: %v\n", err)
		os.Exit(1)
	}
	return config
}

// runEmulation runs the program in functional emulation mode, one
// instruction per step. In this mode -max-cycles caps instructions.
func runEmulation(prog *loader.Program) int {
	regFile := &emu.RegFile{}
	memory := emu.NewMemory()
	memory.LoadProgram(prog.Words)

	emulator := emu.NewEmulator(regFile, memory,
		emu.WithMaxInstructions(*maxCycles))
	executed := emulator.Run()

	if *verbose {
		fmt.Printf("Instructions executed: %d\n", executed)
	}

	renderer := report.NewRenderer(os.Stdout, reportConfig())
	renderer.RenderFinal(regFile, memory, pipeline.Statistics{
		Cycles:       executed,
		Instructions: executed,
	})
	return 0
}

// runPipeline runs the program on the cycle-level pipeline, printing the
// per-cycle trace and the final state report.
func runPipeline(prog *loader.Program) int {
	regFile := &emu.RegFile{}
	memory := emu.NewMemory()
	memory.LoadProgram(prog.Words)

	config := reportConfig()
	renderer := report.NewRenderer(os.Stdout, config)

	fmt.Println("Instruction memory loaded.")
	if config.ShowInstructionMemory {
		renderer.RenderInstructionMemory(memory)
	}

	c := core.NewCore(regFile, memory)

	fmt.Println("===== Simulation Start =====")

	if *engineMode {
		if err := core.RunOnEngine(c); err != nil {
			fmt.Fprintf(os.Stderr, "Engine error: %v\n", err)
			return 1
		}
	} else {
		for !c.Drained() {
			c.Tick()
			if c.Drained() {
				break
			}
			renderer.RenderCycle(c.Pipeline)
			if *maxCycles > 0 && c.Stats().Cycles >= *maxCycles {
				fmt.Printf("Cycle limit reached (%d cycles).\n", *maxCycles)
				break
			}
		}
	}

	renderer.RenderFinal(regFile, memory, c.Pipeline.Stats())
	return 0
}
