// Package report renders simulation output: the per-cycle pipeline
// occupancy table and the final register, memory, and statistics dumps.
package report

import (
	"fmt"
	"io"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

// Renderer writes human-readable simulation reports.
type Renderer struct {
	w       io.Writer
	config  *Config
	decoder *insts.Decoder
}

// NewRenderer creates a Renderer writing to w. A nil config uses defaults.
func NewRenderer(w io.Writer, config *Config) *Renderer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Renderer{
		w:       w,
		config:  config,
		decoder: insts.NewDecoder(),
	}
}

// RenderCycle prints the pipeline occupancy for the cycle that just
// executed. Instructions are numbered by the address they were fetched
// from, starting at 1.
func (r *Renderer) RenderCycle(pipe *pipeline.Pipeline) {
	if !r.config.ShowPipeline {
		return
	}

	fmt.Fprintf(r.w, "Clock Cycle %d\n", pipe.Stats().Cycles)
	fmt.Fprintf(r.w, "| %-30s | %-60s | %-30s |\n",
		r.fetchColumn(pipe.GetIFID()),
		r.decodeColumn(pipe.GetIDEX()),
		r.executeColumn(pipe.GetExecuteView()))
}

func (r *Renderer) fetchColumn(reg *pipeline.IFIDRegister) string {
	if !reg.Valid {
		return "-"
	}
	return fmt.Sprintf("Instruction %d (PC=%d)", reg.PC+1, reg.PC)
}

func (r *Renderer) decodeColumn(reg *pipeline.IDEXRegister) string {
	if !reg.Valid {
		return "-"
	}
	inst := reg.Inst
	if inst.Format == insts.FormatImm {
		return fmt.Sprintf("Instruction %d (%v, rs=R%d=%d, imm=%d)",
			reg.PC+1, inst.Op, inst.Rs, reg.RsValue, inst.Imm)
	}
	return fmt.Sprintf("Instruction %d (%v, rs=R%d=%d, rt=R%d=%d)",
		reg.PC+1, inst.Op, inst.Rs, reg.RsValue, inst.Rt, reg.RtValue)
}

func (r *Renderer) executeColumn(view *pipeline.ExecuteSnapshot) string {
	if !view.Valid {
		return "-"
	}
	return fmt.Sprintf("Instruction %d (PC=%d)", view.PC+1, view.PC)
}

// RenderRegisters prints the full register file followed by SREG and PC.
func (r *Renderer) RenderRegisters(regFile *emu.RegFile) {
	fmt.Fprintln(r.w, "Registers:")
	allZero := true
	for i := 0; i < emu.NumRegs; i++ {
		fmt.Fprintf(r.w, "R%02d: 0x%02X  ", i, regFile.R[i])
		if regFile.R[i] != 0 {
			allZero = false
		}
		if (i+1)%r.config.RegistersPerRow == 0 {
			fmt.Fprintln(r.w)
		}
	}
	if emu.NumRegs%r.config.RegistersPerRow != 0 {
		fmt.Fprintln(r.w)
	}
	if allZero {
		fmt.Fprintln(r.w, "(all zero)")
	}
	fmt.Fprintf(r.w, "SREG: %v\n", regFile.SREG)
	fmt.Fprintf(r.w, "PC: 0x%04X\n", regFile.PC)
}

// RenderInstructionMemory prints the nonzero words of instruction memory
// with their disassembly.
func (r *Renderer) RenderInstructionMemory(memory *emu.Memory) {
	fmt.Fprintln(r.w, "Instruction Memory:")
	for addr := uint16(0); addr < emu.InstrMemWords; addr++ {
		word := memory.ReadInstruction(addr)
		if word == 0 {
			continue
		}
		fmt.Fprintf(r.w, "0x%04X: 0x%04X  %v\n", addr, word, r.decoder.Decode(word))
	}
}

// RenderDataMemory prints the nonzero bytes of data memory.
func (r *Renderer) RenderDataMemory(memory *emu.Memory) {
	fmt.Fprintln(r.w, "Data Memory:")
	for addr := uint16(0); addr < emu.DataMemBytes; addr++ {
		value := memory.ReadData(addr)
		if value == 0 {
			continue
		}
		fmt.Fprintf(r.w, "0x%04X: 0x%02X\n", addr, value)
	}
}

// RenderStats prints the statistics summary.
func (r *Renderer) RenderStats(stats pipeline.Statistics) {
	fmt.Fprintf(r.w, "Cycles:       %d\n", stats.Cycles)
	fmt.Fprintf(r.w, "Instructions: %d\n", stats.Instructions)
	fmt.Fprintf(r.w, "Flushes:      %d\n", stats.Flushes)
	fmt.Fprintf(r.w, "CPI:          %.2f\n", stats.CPI())
}

// RenderFinal prints the end-of-simulation report sections enabled in the
// configuration.
func (r *Renderer) RenderFinal(
	regFile *emu.RegFile,
	memory *emu.Memory,
	stats pipeline.Statistics,
) {
	if r.config.ShowRegisters {
		fmt.Fprintln(r.w, "\n===== Final Registers =====")
		r.RenderRegisters(regFile)
	}
	if r.config.ShowInstructionMemory {
		fmt.Fprintln(r.w, "\n===== Final Instruction Memory =====")
		r.RenderInstructionMemory(memory)
	}
	if r.config.ShowDataMemory {
		fmt.Fprintln(r.w, "\n===== Final Data Memory =====")
		r.RenderDataMemory(memory)
	}
	if r.config.ShowStats {
		fmt.Fprintln(r.w, "\n===== Statistics =====")
		r.RenderStats(stats)
	}
}
