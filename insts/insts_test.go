package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tc16sim/insts"
)

var _ = Describe("Insts Package", func() {
	It("should name every assigned opcode", func() {
		for op := insts.Op(0); op < insts.NumOps; op++ {
			Expect(op.String()).ToNot(Equal("???"))
		}
	})

	It("should render unassigned opcodes as ???", func() {
		Expect(insts.Op(12).String()).To(Equal("???"))
		Expect(insts.Op(15).String()).To(Equal("???"))
	})

	It("should resolve mnemonics back to opcodes", func() {
		for op := insts.Op(0); op < insts.NumOps; op++ {
			resolved, ok := insts.OpFromMnemonic(op.String())
			Expect(ok).To(BeTrue())
			Expect(resolved).To(Equal(op))
		}
	})

	It("should reject unknown mnemonics", func() {
		_, ok := insts.OpFromMnemonic("NOP")
		Expect(ok).To(BeFalse())
	})

	It("should classify the immediate-format opcodes", func() {
		immOps := []insts.Op{
			insts.OpMOVI, insts.OpBEQZ, insts.OpANDI,
			insts.OpSAL, insts.OpSAR, insts.OpLDR, insts.OpSTR,
		}
		for _, op := range immOps {
			Expect(insts.FormatOf(op)).To(Equal(insts.FormatImm))
		}
	})

	It("should classify the register-format opcodes", func() {
		regOps := []insts.Op{
			insts.OpADD, insts.OpSUB, insts.OpMUL,
			insts.OpEOR, insts.OpBR,
		}
		for _, op := range regOps {
			Expect(insts.FormatOf(op)).To(Equal(insts.FormatReg))
		}
	})

	It("should render instructions in assembly form", func() {
		inst := &insts.Instruction{
			Op: insts.OpMOVI, Format: insts.FormatImm, Rs: 1, Imm: 5,
		}
		Expect(inst.String()).To(Equal("MOVI R1, 5"))

		inst = &insts.Instruction{
			Op: insts.OpADD, Format: insts.FormatReg, Rs: 1, Rt: 2,
		}
		Expect(inst.String()).To(Equal("ADD R1, R2"))

		inst = &insts.Instruction{
			Op: insts.OpBEQZ, Format: insts.FormatImm, Rs: 7, Imm: -4,
		}
		Expect(inst.String()).To(Equal("BEQZ R7, -4"))
	})
})
