package asm

import (
	"fmt"

	"github.com/sarchlab/hackasm/isa"
	"github.com/sarchlab/hackasm/symbol"
)

// ResolveLabels is the first pass. It binds every label declaration to the
// index of the next instruction and returns the remaining instructions in
// order.
func ResolveLabels(lines []Line, symbols *symbol.Table) ([]Line, error) {
	instructions := make([]Line, 0, len(lines))

	for _, l := range lines {
		if Classify(l.Text) != LabelDeclaration {
			if len(instructions) >= isa.ROMSize {
				return nil, lineError(l, fmt.Errorf("%w: more than %d instructions",
					ErrProgramTooLarge, isa.ROMSize))
			}

			instructions = append(instructions, l)
			continue
		}

		name, err := ParseLabel(l.Text)
		if err != nil {
			return nil, lineError(l, err)
		}

		// A trailing label points one past the last instruction, which is
		// still a valid jump target.
		if err := symbols.Define(name, uint16(len(instructions))); err != nil {
			return nil, lineError(l, err)
		}
	}

	return instructions, nil
}

// Encode is the second pass. It translates label-free instructions into
// machine words, allocating variables on first reference.
func Encode(instructions []Line, symbols *symbol.Table) ([]isa.Word, error) {
	words := make([]isa.Word, 0, len(instructions))

	for _, l := range instructions {
		w, err := encodeOne(l, symbols)
		if err != nil {
			return nil, lineError(l, err)
		}

		words = append(words, w)
	}

	return words, nil
}

func encodeOne(l Line, symbols *symbol.Table) (isa.Word, error) {
	switch Classify(l.Text) {
	case ReferenceInstruction:
		return encodeReference(l.Text, symbols)
	case ComputationInstruction:
		c, err := ParseComputation(l.Text)
		if err != nil {
			return 0, err
		}
		return c.Word(), nil
	default:
		return 0, fmt.Errorf("%w: label left after first pass", ErrMalformedLabel)
	}
}

func encodeReference(text string, symbols *symbol.Table) (isa.Word, error) {
	ref, err := ParseReference(text)
	if err != nil {
		return 0, err
	}

	value := ref.Value
	if !ref.Literal {
		value, err = symbols.AllocateVariable(ref.Symbol)
		if err != nil {
			return 0, err
		}
	}

	return isa.AddressWord(value)
}
