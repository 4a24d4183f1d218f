// Package benchmarks provides timing benchmark infrastructure for TC16Sim
// validation.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/timing/core"
)

// BenchmarkResult holds the timing results for a single benchmark run.
type BenchmarkResult struct {
	// Name identifies the benchmark
	Name string `json:"name"`

	// Description explains what the benchmark measures
	Description string `json:"description"`

	// SimulatedCycles is the total cycle count from the timing simulator
	SimulatedCycles uint64 `json:"simulated_cycles"`

	// InstructionsExecuted is the number of completed instructions
	InstructionsExecuted uint64 `json:"instructions_executed"`

	// CPI is cycles per instruction
	CPI float64 `json:"cpi"`

	// PipelineFlushes is the number of fetched instructions squashed by
	// taken branches
	PipelineFlushes uint64 `json:"pipeline_flushes"`

	// Validated reports whether the final architectural state matched the
	// benchmark's expected values
	Validated bool `json:"validated"`

	// WallTime is the actual time taken to run the simulation
	WallTime time.Duration `json:"wall_time_ns"`
}

// Benchmark defines a single benchmark program.
type Benchmark struct {
	// Name identifies the benchmark
	Name string

	// Description explains what the benchmark measures
	Description string

	// Setup prepares the simulator state before the run (e.g., preload
	// data memory)
	Setup func(regFile *emu.RegFile, memory *emu.Memory)

	// Program is the TC16 machine code to execute
	Program []uint16

	// ExpectedRegisters maps register numbers to the values they must
	// hold after the run
	ExpectedRegisters map[uint8]uint8

	// ExpectedSREG is the status register value expected after the run,
	// checked only when CheckSREG is set
	ExpectedSREG emu.SREG
	CheckSREG    bool

	// ExpectedCycles is the cycle count the pipeline model predicts
	ExpectedCycles uint64
}

// HarnessConfig configures the benchmark harness.
type HarnessConfig struct {
	// Output is where to write results (default: os.Stdout)
	Output io.Writer

	// Verbose prints a progress line per benchmark
	Verbose bool
}

// DefaultConfig returns a default harness configuration.
func DefaultConfig() HarnessConfig {
	return HarnessConfig{
		Output:  os.Stdout,
		Verbose: false,
	}
}

// Harness runs timing benchmarks and reports results.
type Harness struct {
	config     HarnessConfig
	benchmarks []Benchmark
}

// NewHarness creates a new benchmark harness.
func NewHarness(config HarnessConfig) *Harness {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	return &Harness{
		config:     config,
		benchmarks: []Benchmark{},
	}
}

// AddBenchmark adds a benchmark to the harness.
func (h *Harness) AddBenchmark(b Benchmark) {
	h.benchmarks = append(h.benchmarks, b)
}

// AddBenchmarks adds multiple benchmarks to the harness.
func (h *Harness) AddBenchmarks(benchmarks []Benchmark) {
	h.benchmarks = append(h.benchmarks, benchmarks...)
}

// RunAll executes all benchmarks and returns results.
func (h *Harness) RunAll() []BenchmarkResult {
	results := make([]BenchmarkResult, 0, len(h.benchmarks))

	for _, bench := range h.benchmarks {
		result := h.runBenchmark(bench)
		results = append(results, result)
	}

	return results
}

// runBenchmark executes a single benchmark on a fresh core.
func (h *Harness) runBenchmark(bench Benchmark) BenchmarkResult {
	regFile := &emu.RegFile{}
	memory := emu.NewMemory()

	if bench.Setup != nil {
		bench.Setup(regFile, memory)
	}
	memory.LoadProgram(bench.Program)

	if h.config.Verbose {
		_, _ = fmt.Fprintf(h.config.Output, "Running %s...\n", bench.Name)
	}

	c := core.NewCore(regFile, memory)

	start := time.Now()
	c.Run()
	wallTime := time.Since(start)

	stats := c.Stats()
	return BenchmarkResult{
		Name:                 bench.Name,
		Description:          bench.Description,
		SimulatedCycles:      stats.Cycles,
		InstructionsExecuted: stats.Instructions,
		CPI:                  stats.CPI,
		PipelineFlushes:      stats.Flushes,
		Validated:            validate(bench, regFile),
		WallTime:             wallTime,
	}
}

// validate checks the final architectural state against the benchmark's
// expectations.
func validate(bench Benchmark, regFile *emu.RegFile) bool {
	for reg, want := range bench.ExpectedRegisters {
		if regFile.ReadReg(reg) != want {
			return false
		}
	}
	if bench.CheckSREG && regFile.SREG != bench.ExpectedSREG {
		return false
	}
	return true
}

// PrintResults outputs benchmark results in a human-readable format.
func (h *Harness) PrintResults(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output, "=== TC16Sim Timing Benchmark Results ===")
	_, _ = fmt.Fprintln(h.config.Output, "")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "Benchmark: %s\n", r.Name)
		_, _ = fmt.Fprintf(h.config.Output, "  Description: %s\n", r.Description)
		_, _ = fmt.Fprintln(h.config.Output, "  --- Timing ---")
		_, _ = fmt.Fprintf(h.config.Output, "  Simulated Cycles:      %d\n", r.SimulatedCycles)
		_, _ = fmt.Fprintf(h.config.Output, "  Instructions Executed: %d\n", r.InstructionsExecuted)
		_, _ = fmt.Fprintf(h.config.Output, "  CPI:                   %.3f\n", r.CPI)
		_, _ = fmt.Fprintf(h.config.Output, "  Pipeline Flushes:      %d\n", r.PipelineFlushes)
		_, _ = fmt.Fprintf(h.config.Output, "  Validated:             %t\n", r.Validated)
		_, _ = fmt.Fprintf(h.config.Output, "  Wall Time: %v\n", r.WallTime)
		_, _ = fmt.Fprintln(h.config.Output, "")
	}
}

// PrintCSV outputs benchmark results in CSV format for easy comparison.
func (h *Harness) PrintCSV(results []BenchmarkResult) {
	_, _ = fmt.Fprintln(h.config.Output,
		"name,cycles,instructions,cpi,flushes,validated")

	for _, r := range results {
		_, _ = fmt.Fprintf(h.config.Output, "%s,%d,%d,%.3f,%d,%t\n",
			r.Name,
			r.SimulatedCycles,
			r.InstructionsExecuted,
			r.CPI,
			r.PipelineFlushes,
			r.Validated,
		)
	}
}

// BenchmarkReport is the complete output format for benchmark results.
type BenchmarkReport struct {
	// Metadata about the benchmark run
	Metadata ReportMetadata `json:"metadata"`

	// Results is the list of individual benchmark results
	Results []BenchmarkResult `json:"results"`

	// Summary contains aggregate statistics
	Summary ReportSummary `json:"summary"`
}

// ReportMetadata contains information about the benchmark run.
type ReportMetadata struct {
	// Timestamp when the benchmark was run
	Timestamp string `json:"timestamp"`

	// Version of the simulator
	Version string `json:"version"`
}

// ReportSummary contains aggregate statistics across all benchmarks.
type ReportSummary struct {
	// TotalBenchmarks is the number of benchmarks run
	TotalBenchmarks int `json:"total_benchmarks"`

	// TotalCycles is the sum of all simulated cycles
	TotalCycles uint64 `json:"total_cycles"`

	// TotalInstructions is the sum of all instructions executed
	TotalInstructions uint64 `json:"total_instructions"`

	// AverageCPI is the average cycles per instruction
	AverageCPI float64 `json:"average_cpi"`

	// TotalWallTime is the total wall clock time for all benchmarks
	TotalWallTime time.Duration `json:"total_wall_time_ns"`
}

// PrintJSON outputs benchmark results in JSON format for automated
// comparison.
func (h *Harness) PrintJSON(results []BenchmarkResult) error {
	var totalCycles, totalInstructions uint64
	var totalWallTime time.Duration
	for _, r := range results {
		totalCycles += r.SimulatedCycles
		totalInstructions += r.InstructionsExecuted
		totalWallTime += r.WallTime
	}

	avgCPI := float64(0)
	if totalInstructions > 0 {
		avgCPI = float64(totalCycles) / float64(totalInstructions)
	}

	report := BenchmarkReport{
		Metadata: ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "0.3.0",
		},
		Results: results,
		Summary: ReportSummary{
			TotalBenchmarks:   len(results),
			TotalCycles:       totalCycles,
			TotalInstructions: totalInstructions,
			AverageCPI:        avgCPI,
			TotalWallTime:     totalWallTime,
		},
	}

	encoder := json.NewEncoder(h.config.Output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
