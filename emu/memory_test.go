package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tc16sim/emu"
)

var _ = Describe("Memory", func() {
	var memory *emu.Memory

	BeforeEach(func() {
		memory = emu.NewMemory()
	})

	Context("instruction memory", func() {
		It("should store and read words", func() {
			memory.WriteInstruction(0, 0x3045)
			memory.WriteInstruction(1023, 0x1234)
			Expect(memory.ReadInstruction(0)).To(Equal(uint16(0x3045)))
			Expect(memory.ReadInstruction(1023)).To(Equal(uint16(0x1234)))
		})

		It("should read out-of-range addresses as the sentinel word", func() {
			Expect(memory.ReadInstruction(1024)).To(Equal(uint16(0)))
			Expect(memory.ReadInstruction(0xFFFF)).To(Equal(uint16(0)))
		})

		It("should drop out-of-range writes", func() {
			memory.WriteInstruction(1024, 0x1234)
			Expect(memory.ReadInstruction(1024)).To(Equal(uint16(0)))
		})

		It("should load a program starting at word 0", func() {
			memory.LoadProgram([]uint16{0x3045, 0x3083, 0x0042})
			Expect(memory.ReadInstruction(0)).To(Equal(uint16(0x3045)))
			Expect(memory.ReadInstruction(1)).To(Equal(uint16(0x3083)))
			Expect(memory.ReadInstruction(2)).To(Equal(uint16(0x0042)))
			Expect(memory.ReadInstruction(3)).To(Equal(uint16(0)))
		})
	})

	Context("data memory", func() {
		It("should store and read bytes", func() {
			memory.WriteData(0, 0x42)
			memory.WriteData(2047, 0x99)
			Expect(memory.ReadData(0)).To(Equal(uint8(0x42)))
			Expect(memory.ReadData(2047)).To(Equal(uint8(0x99)))
		})

		It("should read out-of-range addresses as zero", func() {
			Expect(memory.ReadData(2048)).To(Equal(uint8(0)))
			Expect(memory.ReadData(0xFFFF)).To(Equal(uint8(0)))
		})

		It("should drop out-of-range writes without disturbing state", func() {
			memory.WriteData(2047, 0x55)
			memory.WriteData(2048, 0x42)
			memory.WriteData(0xFFFF, 0x42)
			Expect(memory.ReadData(2047)).To(Equal(uint8(0x55)))
			Expect(memory.ReadData(2048)).To(Equal(uint8(0)))
		})
	})

	Context("address immediates", func() {
		It("should map non-negative immediates directly", func() {
			Expect(emu.DataAddress(0)).To(Equal(uint16(0)))
			Expect(emu.DataAddress(31)).To(Equal(uint16(31)))
		})

		It("should map negative immediates above the data memory limit", func() {
			Expect(emu.DataAddress(-1)).To(Equal(uint16(0xFFFF)))
			Expect(emu.DataAddress(-32)).To(Equal(uint16(0xFFE0)))
		})
	})
})
