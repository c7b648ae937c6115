// Package isa defines the instruction set of the 16-bit Hack machine: the
// machine word, the enumerated fields of a computation instruction and their
// bit patterns, the ALU, and the memory map.
package isa

import (
	"errors"
	"fmt"
)

// Errors returned when a mnemonic or a machine word cannot be decoded.
var (
	ErrUnknownDest   = errors.New("unknown destination mnemonic")
	ErrUnknownJump   = errors.New("unknown jump mnemonic")
	ErrUnknownComp   = errors.New("unknown computation mnemonic")
	ErrMalformedWord = errors.New("malformed machine word")
	ErrValueTooLarge = errors.New("value does not fit in 15 bits")
)

const computePrefix Word = 0b111 << 13

// Word is a single 16-bit machine instruction.
type Word uint16

// AddressWord encodes a reference instruction that loads value into the
// address register.
func AddressWord(value uint16) (Word, error) {
	if value > MaxAddress {
		return 0, fmt.Errorf("%w: %d", ErrValueTooLarge, value)
	}

	return Word(value), nil
}

// ComputeWord encodes a computation instruction.
func ComputeWord(c Comp, d Dest, j Jump) Word {
	return computePrefix |
		Word(c.Bits())<<6 |
		Word(d.Bits())<<3 |
		Word(j.Bits())
}

// ParseWord decodes the 16-character binary text form of a word.
func ParseWord(s string) (Word, error) {
	if len(s) != 16 {
		return 0, fmt.Errorf("%w: %q has %d digits", ErrMalformedWord, s, len(s))
	}

	var w Word
	for _, ch := range s {
		w <<= 1
		switch ch {
		case '0':
		case '1':
			w |= 1
		default:
			return 0, fmt.Errorf("%w: %q", ErrMalformedWord, s)
		}
	}

	return w, nil
}

// String returns the word as exactly 16 binary digits.
func (w Word) String() string {
	return fmt.Sprintf("%016b", uint16(w))
}

// IsAddress reports whether w is a reference instruction.
func (w Word) IsAddress() bool {
	return w&0x8000 == 0
}

// Value returns the 15-bit payload of a reference instruction.
func (w Word) Value() uint16 {
	return uint16(w) & MaxAddress
}

// UsesMemory reports whether the second ALU operand is RAM[A] instead of A.
func (w Word) UsesMemory() bool {
	return w&(1<<12) != 0
}

// ALUControl returns the six ALU control bits zx nx zy ny f no.
func (w Word) ALUControl() uint16 {
	return uint16(w>>6) & 0x3f
}

// Dest returns the destination field.
func (w Word) Dest() Dest {
	return Dest((w >> 3) & 0x7)
}

// Jump returns the jump field.
func (w Word) Jump() Jump {
	return Jump(w & 0x7)
}
