// Package main provides a debugging tool that dumps the full simulator
// state, latches included, after a number of cycles.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
	"github.com/sarchlab/tc16sim/loader"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

var (
	cycles  = flag.Uint64("cycles", 0, "Number of cycles to run before dumping (0 runs to drain)")
	listing = flag.Bool("listing", false, "Print the decoded program listing before the dump")
)

// processorState gathers everything worth seeing in one dump.
type processorState struct {
	PC          uint16
	SREG        emu.SREG
	Registers   [emu.NumRegs]uint8
	FetchLatch  *pipeline.IFIDRegister
	DecodeLatch *pipeline.IDEXRegister
	ExecuteView *pipeline.ExecuteSnapshot
	Drained     bool
	Stats       pipeline.Statistics
}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: inspect [options] <program.txt>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	prog, err := loader.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *listing {
		decoder := insts.NewDecoder()
		for addr, word := range prog.Words {
			fmt.Printf("0x%04X: 0x%04X  %v\n", addr, word, decoder.Decode(word))
		}
		fmt.Println()
	}

	regFile := &emu.RegFile{}
	memory := emu.NewMemory()
	memory.LoadProgram(prog.Words)

	pipe := pipeline.NewPipeline(regFile, memory)
	if *cycles > 0 {
		pipe.RunCycles(*cycles)
	} else {
		pipe.Run()
	}

	spew.Dump(processorState{
		PC:          regFile.PC,
		SREG:        regFile.SREG,
		Registers:   regFile.R,
		FetchLatch:  pipe.GetIFID(),
		DecodeLatch: pipe.GetIDEX(),
		ExecuteView: pipe.GetExecuteView(),
		Drained:     pipe.Drained(),
		Stats:       pipe.Stats(),
	})
}
