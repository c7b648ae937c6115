package isa

import "fmt"

// Comp is the computation performed by the ALU. Each register form using A
// has a twin using M, which differs only in the addressing-mode bit.
type Comp uint8

// All computations.
const (
	CompZero Comp = iota
	CompOne
	CompNegOne
	CompD
	CompA
	CompNotD
	CompNotA
	CompNegD
	CompNegA
	CompDPlusOne
	CompAPlusOne
	CompDMinusOne
	CompAMinusOne
	CompDPlusA
	CompDMinusA
	CompAMinusD
	CompDAndA
	CompDOrA
	CompM
	CompNotM
	CompNegM
	CompMPlusOne
	CompMMinusOne
	CompDPlusM
	CompDMinusM
	CompMMinusD
	CompDAndM
	CompDOrM

	numComps
)

type compEncoding struct {
	mnemonic string
	bits     uint16
}

var compEncodings = [numComps]compEncoding{
	CompZero:      {"0", 0b0101010},
	CompOne:       {"1", 0b0111111},
	CompNegOne:    {"-1", 0b0111010},
	CompD:         {"D", 0b0001100},
	CompA:         {"A", 0b0110000},
	CompNotD:      {"!D", 0b0001101},
	CompNotA:      {"!A", 0b0110001},
	CompNegD:      {"-D", 0b0001111},
	CompNegA:      {"-A", 0b0110011},
	CompDPlusOne:  {"D+1", 0b0011111},
	CompAPlusOne:  {"A+1", 0b0110111},
	CompDMinusOne: {"D-1", 0b0001110},
	CompAMinusOne: {"A-1", 0b0110010},
	CompDPlusA:    {"D+A", 0b0000010},
	CompDMinusA:   {"D-A", 0b0010011},
	CompAMinusD:   {"A-D", 0b0000111},
	CompDAndA:     {"D&A", 0b0000000},
	CompDOrA:      {"D|A", 0b0010101},
	CompM:         {"M", 0b1110000},
	CompNotM:      {"!M", 0b1110001},
	CompNegM:      {"-M", 0b1110011},
	CompMPlusOne:  {"M+1", 0b1110111},
	CompMMinusOne: {"M-1", 0b1110010},
	CompDPlusM:    {"D+M", 0b1000010},
	CompDMinusM:   {"D-M", 0b1010011},
	CompMMinusD:   {"M-D", 0b1000111},
	CompDAndM:     {"D&M", 0b1000000},
	CompDOrM:      {"D|M", 0b1010101},
}

var compByMnemonic = func() map[string]Comp {
	m := make(map[string]Comp, numComps)
	for c, enc := range compEncodings {
		m[enc.mnemonic] = Comp(c)
	}
	return m
}()

// ParseComp looks up a computation mnemonic. Mnemonics are matched exactly,
// so "A+D" is not accepted in place of "D+A".
func ParseComp(s string) (Comp, error) {
	c, ok := compByMnemonic[s]
	if !ok {
		return CompZero, fmt.Errorf("%w: %q", ErrUnknownComp, s)
	}

	return c, nil
}

// Comps returns every computation in declaration order.
func Comps() []Comp {
	comps := make([]Comp, numComps)
	for i := range comps {
		comps[i] = Comp(i)
	}
	return comps
}

// Bits returns the 7-bit computation field: the addressing-mode bit followed
// by the six ALU control bits.
func (c Comp) Bits() uint16 {
	return compEncodings[c].bits
}

func (c Comp) String() string {
	if c >= numComps {
		return fmt.Sprintf("Comp(%d)", uint8(c))
	}
	return compEncodings[c].mnemonic
}
