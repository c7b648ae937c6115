package isa_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hackasm/isa"
)

var _ = Describe("Word", func() {
	It("should encode a reference instruction", func() {
		w, err := isa.AddressWord(2)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.String()).To(Equal("0000000000000010"))
		Expect(w.IsAddress()).To(BeTrue())
	})

	It("should encode the largest literal", func() {
		w, err := isa.AddressWord(isa.MaxAddress)

		Expect(err).NotTo(HaveOccurred())
		Expect(w.String()).To(Equal("0111111111111111"))
	})

	It("should reject values wider than 15 bits", func() {
		_, err := isa.AddressWord(isa.MaxAddress + 1)

		Expect(err).To(MatchError(isa.ErrValueTooLarge))
	})

	It("should encode a computation instruction", func() {
		w := isa.ComputeWord(isa.CompA, isa.DestD, isa.JumpNone)

		Expect(w.String()).To(Equal("1110110000010000"))
		Expect(w.IsAddress()).To(BeFalse())
		Expect(w.Dest()).To(Equal(isa.DestD))
		Expect(w.Jump()).To(Equal(isa.JumpNone))
		Expect(w.UsesMemory()).To(BeFalse())
	})

	It("should encode an unconditional jump", func() {
		w := isa.ComputeWord(isa.CompZero, isa.DestNone, isa.JumpJMP)

		Expect(w.String()).To(Equal("1110101010000111"))
	})

	It("should round trip through the text form", func() {
		w := isa.ComputeWord(isa.CompDPlusM, isa.DestAMD, isa.JumpJLE)

		parsed, err := isa.ParseWord(w.String())

		Expect(err).NotTo(HaveOccurred())
		Expect(parsed).To(Equal(w))
		Expect(parsed.UsesMemory()).To(BeTrue())
	})

	DescribeTable("should reject malformed words",
		func(text string) {
			_, err := isa.ParseWord(text)
			Expect(err).To(MatchError(isa.ErrMalformedWord))
		},
		Entry("too short", "0101"),
		Entry("too long", "00000000000000000"),
		Entry("bad digit", "000000000000000x"),
	)
})

var _ = Describe("Fields", func() {
	DescribeTable("destinations",
		func(mnemonic string, want isa.Dest, bits uint16) {
			d, err := isa.ParseDest(mnemonic)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(want))
			Expect(d.Bits()).To(Equal(bits))
		},
		Entry("none", "", isa.DestNone, uint16(0b000)),
		Entry("M", "M", isa.DestM, uint16(0b001)),
		Entry("D", "D", isa.DestD, uint16(0b010)),
		Entry("MD", "MD", isa.DestMD, uint16(0b011)),
		Entry("A", "A", isa.DestA, uint16(0b100)),
		Entry("AM", "AM", isa.DestAM, uint16(0b101)),
		Entry("AD", "AD", isa.DestAD, uint16(0b110)),
		Entry("AMD", "AMD", isa.DestAMD, uint16(0b111)),
	)

	DescribeTable("jumps",
		func(mnemonic string, want isa.Jump, bits uint16) {
			j, err := isa.ParseJump(mnemonic)
			Expect(err).NotTo(HaveOccurred())
			Expect(j).To(Equal(want))
			Expect(j.Bits()).To(Equal(bits))
		},
		Entry("none", "", isa.JumpNone, uint16(0b000)),
		Entry("JGT", "JGT", isa.JumpJGT, uint16(0b001)),
		Entry("JEQ", "JEQ", isa.JumpJEQ, uint16(0b010)),
		Entry("JGE", "JGE", isa.JumpJGE, uint16(0b011)),
		Entry("JLT", "JLT", isa.JumpJLT, uint16(0b100)),
		Entry("JNE", "JNE", isa.JumpJNE, uint16(0b101)),
		Entry("JLE", "JLE", isa.JumpJLE, uint16(0b110)),
		Entry("JMP", "JMP", isa.JumpJMP, uint16(0b111)),
	)

	It("should reject unknown mnemonics", func() {
		_, err := isa.ParseDest("MA")
		Expect(err).To(MatchError(isa.ErrUnknownDest))

		_, err = isa.ParseJump("GLT")
		Expect(err).To(MatchError(isa.ErrUnknownJump))

		_, err = isa.ParseComp("A+D")
		Expect(err).To(MatchError(isa.ErrUnknownComp))
	})

	It("should give every computation a distinct mnemonic and bit pattern", func() {
		mnemonics := map[string]bool{}
		patterns := map[uint16]bool{}

		for _, c := range isa.Comps() {
			parsed, err := isa.ParseComp(c.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(c))

			mnemonics[c.String()] = true
			patterns[c.Bits()] = true
		}

		Expect(isa.Comps()).To(HaveLen(28))
		Expect(mnemonics).To(HaveLen(28))
		Expect(patterns).To(HaveLen(28))
	})

	It("should evaluate jump conditions on the sign of the output", func() {
		neg := uint16(0xffff)

		Expect(isa.JumpJLT.Taken(neg)).To(BeTrue())
		Expect(isa.JumpJLT.Taken(0)).To(BeFalse())
		Expect(isa.JumpJGE.Taken(0)).To(BeTrue())
		Expect(isa.JumpJGT.Taken(1)).To(BeTrue())
		Expect(isa.JumpJNE.Taken(0)).To(BeFalse())
		Expect(isa.JumpJMP.Taken(neg)).To(BeTrue())
		Expect(isa.JumpNone.Taken(1)).To(BeFalse())
	})
})

var _ = Describe("ALU", func() {
	x, y := uint16(7), uint16(3)

	control := func(c isa.Comp) uint16 {
		return isa.ComputeWord(c, isa.DestNone, isa.JumpNone).ALUControl()
	}

	DescribeTable("should compute every operation",
		func(c isa.Comp, want int16) {
			Expect(isa.ALU(x, y, control(c))).To(Equal(uint16(want)))
		},
		Entry("0", isa.CompZero, int16(0)),
		Entry("1", isa.CompOne, int16(1)),
		Entry("-1", isa.CompNegOne, int16(-1)),
		Entry("D", isa.CompD, int16(7)),
		Entry("A", isa.CompA, int16(3)),
		Entry("!D", isa.CompNotD, int16(^7)),
		Entry("!A", isa.CompNotA, int16(^3)),
		Entry("-D", isa.CompNegD, int16(-7)),
		Entry("-A", isa.CompNegA, int16(-3)),
		Entry("D+1", isa.CompDPlusOne, int16(8)),
		Entry("A+1", isa.CompAPlusOne, int16(4)),
		Entry("D-1", isa.CompDMinusOne, int16(6)),
		Entry("A-1", isa.CompAMinusOne, int16(2)),
		Entry("D+A", isa.CompDPlusA, int16(10)),
		Entry("D-A", isa.CompDMinusA, int16(4)),
		Entry("A-D", isa.CompAMinusD, int16(-4)),
		Entry("D&A", isa.CompDAndA, int16(3)),
		Entry("D|A", isa.CompDOrA, int16(7)),
		Entry("M-D", isa.CompMMinusD, int16(-4)),
		Entry("D|M", isa.CompDOrM, int16(7)),
	)
})
