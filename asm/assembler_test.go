package asm_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/hackasm/asm"
	"github.com/sarchlab/hackasm/isa"
	"github.com/sarchlab/hackasm/symbol"
)

func assemble(src string) ([]string, error) {
	var out bytes.Buffer
	if err := asm.New().Assemble(strings.NewReader(src), &out); err != nil {
		return nil, err
	}

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"), nil
}

var _ = Describe("Assembler", func() {
	It("should add two constants", func() {
		out, err := assemble("@2\nD=A\n@3\nD=D+A\n@0\nM=D\n")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]string{
			"0000000000000010",
			"1110110000010000",
			"0000000000000011",
			"1110000010010000",
			"0000000000000000",
			"1110001100001000",
		}))
	})

	It("should resolve a label onto the first instruction", func() {
		out, err := assemble("(LOOP)\n@LOOP\n0;JMP\n")

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal([]string{
			"0000000000000000",
			"1110101010000111",
		}))
	})

	It("should allocate a variable once", func() {
		out, err := assemble("@i\nM=1\n@i\n")

		Expect(err).NotTo(HaveOccurred())
		Expect(out[0]).To(Equal("0000000000010000"))
		Expect(out[2]).To(Equal("0000000000010000"))
	})

	It("should resolve forward and backward labels", func() {
		src := `
// count down from R0
(TOP)
    @R0
    D=M
    @END      // forward
    D;JEQ
    @R0
    M=M-1
    @TOP      // backward
    0;JMP
(END)
    @END
    0;JMP
`
		a := asm.New()
		words, err := a.AssembleWords(strings.NewReader(src))

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(HaveLen(10))
		Expect(words[2].Value()).To(Equal(uint16(8)))
		Expect(words[6].Value()).To(Equal(uint16(0)))
		Expect(words[8].Value()).To(Equal(uint16(8)))

		end, ok := a.Symbols().Lookup("END")
		Expect(ok).To(BeTrue())
		Expect(end).To(Equal(uint16(8)))
	})

	It("should give variables increasing addresses in order of first use", func() {
		a := asm.New()
		words, err := a.AssembleWords(strings.NewReader(
			"@x\n@y\n@x\n@R5\n@z\n@LOOP\n(LOOP)\n@y\n"))

		Expect(err).NotTo(HaveOccurred())

		var values []uint16
		for _, w := range words {
			values = append(values, w.Value())
		}
		Expect(values).To(Equal([]uint16{16, 17, 16, 5, 18, 6, 17}))
	})

	It("should encode every literal as its 15-bit binary form", func() {
		for _, n := range []int{0, 1, 255, 16384, 32767} {
			out, err := assemble(fmt.Sprintf("@%d\n", n))

			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal([]string{fmt.Sprintf("0%015b", n)}))
		}
	})

	It("should produce identical output on repeated runs", func() {
		src := "@a\n@b\n(L)\n@L\nD;JLT\n@a\n"

		first, err := assemble(src)
		Expect(err).NotTo(HaveOccurred())
		second, err := assemble(src)
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
	})

	It("should start every run from a fresh symbol table", func() {
		a := asm.New()

		var first bytes.Buffer
		Expect(a.Assemble(strings.NewReader("@x\n"), &first)).To(Succeed())
		Expect(first.String()).To(Equal("0000000000010000\n"))

		var second bytes.Buffer
		Expect(a.Assemble(strings.NewReader("@y\n(L)\n@L\n"), &second)).To(Succeed())
		Expect(second.String()).To(Equal("0000000000010000\n0000000000000001\n"))

		_, ok := a.Symbols().Lookup("x")
		Expect(ok).To(BeFalse())
		y, _ := a.Symbols().Lookup("y")
		Expect(y).To(Equal(uint16(16)))
	})

	It("should accept a long comment line", func() {
		src := "@1 // " + strings.Repeat("x", 100_000) + "\nD=A\n"

		out, err := assemble(src)

		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(2))
	})

	It("should fill the whole ROM and bind a trailing label past its end", func() {
		src := strings.Repeat("0\n", isa.ROMSize) + "(END)\n"

		a := asm.New()
		words, err := a.AssembleWords(strings.NewReader(src))

		Expect(err).NotTo(HaveOccurred())
		Expect(words).To(HaveLen(isa.ROMSize))

		end, ok := a.Symbols().Lookup("END")
		Expect(ok).To(BeTrue())
		Expect(end).To(Equal(uint16(isa.ROMSize)))
	})

	Context("when translation fails", func() {
		It("should reject a program larger than ROM", func() {
			_, err := assemble(strings.Repeat("0\n", isa.ROMSize+1))

			Expect(err).To(MatchError(asm.ErrProgramTooLarge))

			var asmErr *asm.Error
			Expect(errors.As(err, &asmErr)).To(BeTrue())
			Expect(asmErr.Line).To(Equal(isa.ROMSize + 1))
		})

		It("should report the source line", func() {
			_, err := assemble("@1\n\n// note\nD=D*A\n")

			var asmErr *asm.Error
			Expect(errors.As(err, &asmErr)).To(BeTrue())
			Expect(asmErr.Line).To(Equal(4))
			Expect(asmErr.Source).To(Equal("D=D*A"))
			Expect(err).To(MatchError(isa.ErrUnknownComp))
			Expect(err.Error()).To(ContainSubstring("line 4"))
		})

		It("should fail on a label declared twice at different places", func() {
			_, err := assemble("(A)\n@1\n(A)\n@2\n")

			Expect(err).To(MatchError(symbol.ErrRedefined))
		})

		It("should fail on a label that shadows an architectural symbol", func() {
			_, err := assemble("@1\n(SCREEN)\n0;JMP\n")

			Expect(err).To(MatchError(symbol.ErrRedefined))
		})

		It("should write nothing", func() {
			var out bytes.Buffer

			err := asm.New().Assemble(strings.NewReader("@1\nD=A\nfoo\n"), &out)

			Expect(err).To(HaveOccurred())
			Expect(out.Len()).To(BeZero())
		})
	})

	It("should derive the output path", func() {
		Expect(asm.OutputPath("prog/Max.asm")).To(Equal("prog/Max.hack"))
		Expect(asm.OutputPath("Rect")).To(Equal("Rect.hack"))
		Expect(asm.OutputPath("a.b/Pong.asm")).To(Equal("a.b/Pong.hack"))
	})
})
