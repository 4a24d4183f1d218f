package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tc16sim/emu"
	"github.com/sarchlab/tc16sim/insts"
)

var _ = Describe("Emulator", func() {
	var (
		regFile  *emu.RegFile
		memory   *emu.Memory
		emulator *emu.Emulator
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		memory = emu.NewMemory()
		emulator = emu.NewEmulator(regFile, memory)
	})

	It("should step one instruction at a time", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
			insts.EncodeImm(insts.OpMOVI, 2, 3),
		})

		halted := emulator.Step()
		Expect(halted).To(BeFalse())
		Expect(regFile.ReadReg(1)).To(Equal(uint8(5)))
		Expect(regFile.ReadReg(2)).To(Equal(uint8(0)))
		Expect(regFile.PC).To(Equal(uint16(1)))
		Expect(emulator.InstructionCount()).To(Equal(uint64(1)))
	})

	It("should halt on the end-of-program sentinel and pin the PC", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 5),
		})

		Expect(emulator.Step()).To(BeFalse())
		Expect(emulator.Step()).To(BeTrue())
		Expect(regFile.PC).To(Equal(uint16(1024)))
		// The sentinel itself does not count as an instruction.
		Expect(emulator.InstructionCount()).To(Equal(uint64(1)))
	})

	It("should halt immediately once the PC is past instruction memory", func() {
		regFile.PC = 1024

		Expect(emulator.Step()).To(BeTrue())
		Expect(emulator.InstructionCount()).To(Equal(uint64(0)))
	})

	It("should take BEQZ on a zero register", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpBEQZ, 1, 2),
			insts.EncodeImm(insts.OpMOVI, 2, 9), // skipped
			insts.EncodeImm(insts.OpMOVI, 3, 9), // skipped
			insts.EncodeImm(insts.OpMOVI, 4, 7),
		})

		executed := emulator.Run()

		Expect(executed).To(Equal(uint64(2)))
		Expect(regFile.ReadReg(2)).To(Equal(uint8(0)))
		Expect(regFile.ReadReg(3)).To(Equal(uint8(0)))
		Expect(regFile.ReadReg(4)).To(Equal(uint8(7)))
	})

	It("should fall through BEQZ on a nonzero register", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 1),
			insts.EncodeImm(insts.OpBEQZ, 1, 1),
			insts.EncodeImm(insts.OpMOVI, 2, 9),
		})

		emulator.Run()

		Expect(regFile.ReadReg(2)).To(Equal(uint8(9)))
	})

	It("should jump through BR to the register pair target", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 6, 4),
			insts.EncodeReg(insts.OpBR, 0, 6),
			insts.EncodeImm(insts.OpMOVI, 2, 9), // skipped
			insts.EncodeImm(insts.OpMOVI, 3, 9), // skipped
			insts.EncodeImm(insts.OpMOVI, 4, 7),
		})

		executed := emulator.Run()

		Expect(executed).To(Equal(uint64(3)))
		Expect(regFile.ReadReg(2)).To(Equal(uint8(0)))
		Expect(regFile.ReadReg(4)).To(Equal(uint8(7)))
	})

	It("should execute a countdown loop to completion", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 1, 3),
			insts.EncodeImm(insts.OpMOVI, 2, 1),
			insts.EncodeImm(insts.OpMOVI, 6, 3),
			insts.EncodeReg(insts.OpSUB, 1, 2),
			insts.EncodeImm(insts.OpBEQZ, 1, 1),
			insts.EncodeReg(insts.OpBR, 0, 6),
			insts.EncodeImm(insts.OpMOVI, 3, 7),
		})

		executed := emulator.Run()

		Expect(executed).To(Equal(uint64(12)))
		Expect(regFile.ReadReg(1)).To(Equal(uint8(0)))
		Expect(regFile.ReadReg(3)).To(Equal(uint8(7)))
		Expect(regFile.PC).To(Equal(uint16(1024)))
	})

	It("should move bytes through data memory", func() {
		memory.WriteData(4, 0x42)
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpLDR, 1, 4),
			insts.EncodeImm(insts.OpSTR, 1, 5),
		})

		emulator.Run()

		Expect(regFile.ReadReg(1)).To(Equal(uint8(0x42)))
		Expect(memory.ReadData(5)).To(Equal(uint8(0x42)))
	})

	It("should treat unassigned opcodes as no-ops that advance the PC", func() {
		regFile.SREG = emu.FlagZ
		memory.LoadProgram([]uint16{
			0xC040, // opcode 12, rs=1
			insts.EncodeImm(insts.OpMOVI, 2, 9),
		})

		executed := emulator.Run()

		Expect(executed).To(Equal(uint64(2)))
		Expect(regFile.ReadReg(1)).To(Equal(uint8(0)))
		Expect(regFile.ReadReg(2)).To(Equal(uint8(9)))
	})

	It("should stop at the instruction limit", func() {
		memory.LoadProgram([]uint16{
			insts.EncodeImm(insts.OpMOVI, 6, 0),
			insts.EncodeReg(insts.OpBR, 0, 6), // spin forever
		})
		emulator = emu.NewEmulator(regFile, memory, emu.WithMaxInstructions(50))

		executed := emulator.Run()

		Expect(executed).To(Equal(uint64(50)))
	})
})

var _ = Describe("Branch targets", func() {
	It("should land one past the branch plus the offset", func() {
		Expect(emu.BranchTarget(5, 2)).To(Equal(uint16(8)))
		Expect(emu.BranchTarget(10, -4)).To(Equal(uint16(7)))
		Expect(emu.BranchTarget(0, -1)).To(Equal(uint16(0)))
	})

	It("should build the jump target from a register pair", func() {
		Expect(emu.JumpTarget(0x01, 0x04)).To(Equal(uint16(0x0104)))
		Expect(emu.JumpTarget(0, 0)).To(Equal(uint16(0)))
	})
})
