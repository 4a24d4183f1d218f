package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
	"github.com/sarchlab/tc16sim/timing/core"
)

var _ = Describe("TickingCore", func() {
	var (
		regFile *emu.RegFile
		memory  *emu.Memory
		c       *core.Core
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		memory = emu.NewMemory()
		c = core.NewCore(regFile, memory)
	})

	It("should report progress until the pipeline drains", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
		})

		engine := sim.NewSerialEngine()
		tickingCore := core.NewTickingCore("Core", engine, 1*sim.GHz, c)

		Expect(tickingCore.Core()).To(BeIdenticalTo(c))
		Expect(tickingCore.Tick()).To(BeTrue())  // fetch
		Expect(tickingCore.Tick()).To(BeTrue())  // decode
		Expect(tickingCore.Tick()).To(BeTrue())  // execute
		Expect(tickingCore.Tick()).To(BeFalse()) // drained

		Expect(regFile.ReadReg(1)).To(Equal(uint8(5)))
		Expect(c.Stats().Cycles).To(Equal(uint64(4)))

		// Ticking a drained core is a no-op.
		Expect(tickingCore.Tick()).To(BeFalse())
		Expect(c.Stats().Cycles).To(Equal(uint64(4)))
	})

	It("should run a program to completion on an event engine", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
			insts.EncodeImm(insts.OpMOVI, 2, 3),
			insts.EncodeReg(insts.OpADD, 1, 2),
		})

		err := core.RunOnEngine(c)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Drained()).To(BeTrue())
		Expect(regFile.ReadReg(1)).To(Equal(uint8(8)))

		stats := c.Stats()
		Expect(stats.Cycles).To(Equal(uint64(6)))
		Expect(stats.Instructions).To(Equal(uint64(3)))
	})

	It("should match the plain run loop cycle for cycle", func() {
		program := []uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 3),
			insts.EncodeImm(insts.OpMOVI, 2, 1),
			insts.EncodeImm(insts.OpMOVI, 6, 3),
			insts.EncodeReg(insts.OpSUB, 1, 2),
			insts.EncodeImm(insts.OpBEQZ, 1, 1),
			insts.EncodeReg(insts.OpBR, 0, 6),
			insts.EncodeImm(insts.OpMOVI, 3, 7),
		}

		memory.LoadProgram(program)
		plainCycles := c.Run()

		engineRegFile := &emu.RegFile{}
		engineMemory := emu.NewMemory()
		engineMemory.LoadProgram(program)
		engineCore := core.NewCore(engineRegFile, engineMemory)

		err := core.RunOnEngine(engineCore)

		Expect(err).NotTo(HaveOccurred())
		Expect(engineCore.Stats().Cycles).To(Equal(plainCycles))
		Expect(engineRegFile.R).To(Equal(regFile.R))
		Expect(engineRegFile.SREG).To(Equal(regFile.SREG))
	})
})
