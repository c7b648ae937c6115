package isa

import "fmt"

// Dest selects which of the A, D and M registers receive the ALU output. The
// three bits are, from high to low, A, D and M.
type Dest uint8

// All destinations.
const (
	DestNone Dest = iota
	DestM
	DestD
	DestMD
	DestA
	DestAM
	DestAD
	DestAMD
)

var destMnemonics = [...]string{
	DestNone: "",
	DestM:    "M",
	DestD:    "D",
	DestMD:   "MD",
	DestA:    "A",
	DestAM:   "AM",
	DestAD:   "AD",
	DestAMD:  "AMD",
}

// ParseDest looks up a destination mnemonic. The empty string is DestNone.
func ParseDest(s string) (Dest, error) {
	for d, m := range destMnemonics {
		if m == s {
			return Dest(d), nil
		}
	}

	return DestNone, fmt.Errorf("%w: %q", ErrUnknownDest, s)
}

// Bits returns the 3-bit destination field.
func (d Dest) Bits() uint16 {
	return uint16(d) & 0x7
}

// A reports whether the A register is written.
func (d Dest) A() bool { return d&DestA != 0 }

// D reports whether the D register is written.
func (d Dest) D() bool { return d&DestD != 0 }

// M reports whether RAM[A] is written.
func (d Dest) M() bool { return d&DestM != 0 }

func (d Dest) String() string {
	if int(d) >= len(destMnemonics) {
		return fmt.Sprintf("Dest(%d)", uint8(d))
	}

	if d == DestNone {
		return "null"
	}

	return destMnemonics[d]
}

// Jump is the branch condition of a computation instruction, tested against
// the ALU output.
type Jump uint8

// All jump conditions.
const (
	JumpNone Jump = iota
	JumpJGT
	JumpJEQ
	JumpJGE
	JumpJLT
	JumpJNE
	JumpJLE
	JumpJMP
)

var jumpMnemonics = [...]string{
	JumpNone: "",
	JumpJGT:  "JGT",
	JumpJEQ:  "JEQ",
	JumpJGE:  "JGE",
	JumpJLT:  "JLT",
	JumpJNE:  "JNE",
	JumpJLE:  "JLE",
	JumpJMP:  "JMP",
}

// ParseJump looks up a jump mnemonic. The empty string is JumpNone.
func ParseJump(s string) (Jump, error) {
	for j, m := range jumpMnemonics {
		if m == s {
			return Jump(j), nil
		}
	}

	return JumpNone, fmt.Errorf("%w: %q", ErrUnknownJump, s)
}

// Bits returns the 3-bit jump field.
func (j Jump) Bits() uint16 {
	return uint16(j) & 0x7
}

// Taken reports whether the jump is taken for the given ALU output. The
// three bits select the lt, eq and gt outcomes respectively.
func (j Jump) Taken(out uint16) bool {
	v := int16(out)
	switch {
	case v < 0:
		return j&0b100 != 0
	case v == 0:
		return j&0b010 != 0
	default:
		return j&0b001 != 0
	}
}

func (j Jump) String() string {
	if int(j) >= len(jumpMnemonics) {
		return fmt.Sprintf("Jump(%d)", uint8(j))
	}

	if j == JumpNone {
		return "null"
	}

	return jumpMnemonics[j]
}
