package pipeline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
	"github.com/sarchlab/tc16sim/timing/pipeline"
)

var _ = Describe("Pipeline", func() {
	var (
		regFile *emu.RegFile
		memory  *emu.Memory
		pipe    *pipeline.Pipeline
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		memory = emu.NewMemory()
		pipe = pipeline.NewPipeline(regFile, memory)
	})

	It("should drain immediately on an empty program", func() {
		cycles := pipe.Run()
		Expect(cycles).To(Equal(uint64(1)))
		Expect(pipe.PC()).To(Equal(uint16(1024)))
		Expect(pipe.Stats().Instructions).To(Equal(uint64(0)))
	})

	It("should fill one stage per cycle", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
		})

		pipe.Tick() // fetch
		Expect(pipe.GetIFID().Valid).To(BeTrue())
		Expect(pipe.GetIFID().PC).To(Equal(uint16(0)))
		Expect(pipe.GetIDEX().Valid).To(BeFalse())

		pipe.Tick() // decode
		Expect(pipe.GetIFID().Valid).To(BeFalse())
		Expect(pipe.GetIDEX().Valid).To(BeTrue())
		Expect(pipe.GetIDEX().Inst.Op).To(Equal(insts.OpMOVI))

		pipe.Tick() // execute
		Expect(pipe.GetExecuteView().Valid).To(BeTrue())
		Expect(regFile.ReadReg(1)).To(Equal(uint8(5)))
		Expect(pipe.Drained()).To(BeFalse())

		pipe.Tick() // drain
		Expect(pipe.GetExecuteView().Valid).To(BeFalse())
		Expect(pipe.Drained()).To(BeTrue())
	})

	It("should run back-to-back arithmetic without stalls", func() {
		// The ADD reads R2 in the same cycle the second MOVI executes;
		// decode samples the register file after execute has written it.
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
			insts.EncodeImm(insts.OpMOVI, 2, 3),
			insts.EncodeReg(insts.OpADD, 1, 2),
		})

		cycles := pipe.Run()

		Expect(regFile.ReadReg(1)).To(Equal(uint8(8)))
		Expect(regFile.ReadReg(2)).To(Equal(uint8(3)))
		Expect(regFile.SREG).To(Equal(emu.SREG(0)))
		Expect(pipe.PC()).To(Equal(uint16(1024)))

		Expect(cycles).To(Equal(uint64(6)))
		stats := pipe.Stats()
		Expect(stats.Instructions).To(Equal(uint64(3)))
		Expect(stats.Flushes).To(Equal(uint64(0)))
	})

	It("should squash the fetched instruction on a taken BEQZ", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 0),
			insts.EncodeImm(insts.OpBEQZ, 1, 2),
			insts.EncodeImm(insts.OpMOVI, 2, 9), // squashed
		})

		cycles := pipe.Run()

		Expect(regFile.ReadReg(2)).To(Equal(uint8(0)))
		Expect(regFile.SREG.Zero()).To(BeTrue())
		Expect(pipe.PC()).To(Equal(uint16(1024)))

		Expect(cycles).To(Equal(uint64(5)))
		stats := pipe.Stats()
		Expect(stats.Instructions).To(Equal(uint64(2)))
		Expect(stats.Flushes).To(Equal(uint64(1)))
	})

	It("should invalidate both pipeline registers on a taken branch", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 0),
			insts.EncodeImm(insts.OpBEQZ, 1, 2),
			insts.EncodeImm(insts.OpMOVI, 2, 9),
		})

		pipe.Tick()
		pipe.Tick()
		pipe.Tick()
		pipe.Tick() // BEQZ executes here

		Expect(pipe.GetExecuteView().Valid).To(BeTrue())
		Expect(pipe.GetExecuteView().InstructionWord).To(
			Equal(insts.EncodeImm(insts.OpBEQZ, 1, 2)))
		Expect(pipe.GetIFID().Valid).To(BeFalse())
		Expect(pipe.GetIDEX().Valid).To(BeFalse())
	})

	It("should fetch the branch target in the same cycle the branch resolves", func() {
		// BR R0, R6 jumps to the address in R6 (high byte from R0 is 0).
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 6, 8),
			insts.EncodeImm(insts.OpMOVI, 5, 0),
			insts.EncodeReg(insts.OpBR, 0, 6),
			insts.EncodeImm(insts.OpMOVI, 7, 1), // squashed
		})
		memory.WriteInstruction(8, insts.EncodeImm(insts.OpMOVI, 4, 7))

		cycles := pipe.Run()

		Expect(regFile.ReadReg(7)).To(Equal(uint8(0)))
		Expect(regFile.ReadReg(4)).To(Equal(uint8(7)))

		Expect(cycles).To(Equal(uint64(8)))
		stats := pipe.Stats()
		Expect(stats.Instructions).To(Equal(uint64(4)))
		Expect(stats.Flushes).To(Equal(uint64(1)))
	})

	It("should execute a countdown loop with backward jumps", func() {
		// R1 counts down from 3. BEQZ exits the loop once it hits zero;
		// BR R0, R6 jumps back to the loop head at word 3.
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 3),
			insts.EncodeImm(insts.OpMOVI, 2, 1),
			insts.EncodeImm(insts.OpMOVI, 6, 3),
			insts.EncodeReg(insts.OpSUB, 1, 2),  // loop head
			insts.EncodeImm(insts.OpBEQZ, 1, 1), // exit once R1 == 0
			insts.EncodeReg(insts.OpBR, 0, 6),
			insts.EncodeImm(insts.OpMOVI, 3, 7), // exit target
		})

		cycles := pipe.Run()

		Expect(regFile.ReadReg(1)).To(Equal(uint8(0)))
		Expect(regFile.ReadReg(3)).To(Equal(uint8(7)))

		Expect(cycles).To(Equal(uint64(18)))
		stats := pipe.Stats()
		Expect(stats.Instructions).To(Equal(uint64(12)))
		Expect(stats.Flushes).To(Equal(uint64(3)))
		Expect(stats.CPI()).To(BeNumerically("==", 1.5))
	})

	It("should round-trip a byte through data memory", func() {
		// Build 0x42 arithmetically: 31 + 31 + 4 = 66.
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 31),
			insts.EncodeImm(insts.OpMOVI, 2, 31),
			insts.EncodeReg(insts.OpADD, 1, 2),
			insts.EncodeImm(insts.OpMOVI, 2, 4),
			insts.EncodeReg(insts.OpADD, 1, 2),
			insts.EncodeImm(insts.OpSTR, 1, 10),
			insts.EncodeImm(insts.OpLDR, 3, 10),
		})

		pipe.Run()

		Expect(memory.ReadData(10)).To(Equal(uint8(0x42)))
		Expect(regFile.ReadReg(3)).To(Equal(uint8(0x42)))
		Expect(regFile.ReadReg(1)).To(Equal(uint8(0x42)))
	})

	It("should pin the PC to 1024 on a zero word while draining in-flight work", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
			insts.EncodeImm(insts.OpMOVI, 2, 6),
		})

		pipe.Tick()
		pipe.Tick()
		pipe.Tick() // fetches the zero word at 2

		Expect(pipe.PC()).To(Equal(uint16(1024)))
		Expect(pipe.Drained()).To(BeFalse())

		pipe.Run()
		Expect(regFile.ReadReg(1)).To(Equal(uint8(5)))
		Expect(regFile.ReadReg(2)).To(Equal(uint8(6)))
	})

	It("should execute unassigned opcodes as no-ops", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, -1),
			0xC040, // opcode 12, rs=1
		})

		pipe.Run()

		Expect(regFile.ReadReg(1)).To(Equal(uint8(0xFF)))
		Expect(regFile.SREG.Negative()).To(BeTrue())
		Expect(pipe.Stats().Instructions).To(Equal(uint64(2)))
	})

	It("should stop RunCycles at the cycle budget", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 6, 0),
			insts.EncodeReg(insts.OpBR, 0, 6), // spin forever
		})

		running := pipe.RunCycles(100)
		Expect(running).To(BeTrue())
		Expect(pipe.Stats().Cycles).To(Equal(uint64(100)))
	})

	It("should reset to a clean state without clearing memory", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
		})
		pipe.Run()
		Expect(regFile.ReadReg(1)).To(Equal(uint8(5)))

		pipe.Reset()
		Expect(regFile.ReadReg(1)).To(Equal(uint8(0)))
		Expect(pipe.PC()).To(Equal(uint16(0)))
		Expect(pipe.Stats().Cycles).To(Equal(uint64(0)))

		cycles := pipe.Run()
		Expect(cycles).To(Equal(uint64(4)))
		Expect(regFile.ReadReg(1)).To(Equal(uint8(5)))
	})
})
