package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/hackasm/isa"
)

const (
	destSeparator = "="
	jumpSeparator = ";"
)

// Reference is a parsed reference instruction: either a decimal literal or a
// symbol name.
type Reference struct {
	Symbol  string
	Literal bool
	Value   uint16
}

// ParseReference parses the text of a reference instruction, including its
// leading "@".
func ParseReference(text string) (Reference, error) {
	operand := strings.TrimPrefix(text, "@")
	if operand == "" {
		return Reference{}, ErrEmptyReference
	}

	if !isDecimal(operand) {
		return Reference{Symbol: operand}, nil
	}

	v, err := strconv.ParseUint(operand, 10, 16)
	if err != nil || v > isa.MaxAddress {
		return Reference{}, fmt.Errorf("%w: %s", ErrLiteralOutOfRange, operand)
	}

	return Reference{Literal: true, Value: uint16(v)}, nil
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// ParseLabel returns the name declared by a "(NAME)" line.
func ParseLabel(text string) (string, error) {
	if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
		return "", fmt.Errorf("%w: missing parenthesis", ErrMalformedLabel)
	}

	name := text[1 : len(text)-1]
	if name == "" || strings.ContainsAny(name, "()") {
		return "", fmt.Errorf("%w: bad name %q", ErrMalformedLabel, name)
	}

	return name, nil
}

// Computation is a parsed computation instruction.
type Computation struct {
	Dest isa.Dest
	Comp isa.Comp
	Jump isa.Jump
}

// ParseComputation parses "dest=comp;jump", where the destination and the
// jump are optional. A separator that is present must be followed (or, for
// the destination, preceded) by a mnemonic.
func ParseComputation(text string) (Computation, error) {
	var (
		c   Computation
		err error
	)

	rest, jumpText, hasJump := strings.Cut(text, jumpSeparator)
	if hasJump {
		if jumpText == "" {
			return c, fmt.Errorf("%w: empty after %q", isa.ErrUnknownJump, jumpSeparator)
		}

		if c.Jump, err = isa.ParseJump(jumpText); err != nil {
			return c, err
		}
	}

	destText, compText, hasDest := strings.Cut(rest, destSeparator)
	if !hasDest {
		compText = rest
	} else {
		if destText == "" {
			return c, fmt.Errorf("%w: empty before %q", isa.ErrUnknownDest, destSeparator)
		}

		if c.Dest, err = isa.ParseDest(destText); err != nil {
			return c, err
		}
	}

	if c.Comp, err = isa.ParseComp(compText); err != nil {
		return c, err
	}

	return c, nil
}

// Word encodes the instruction.
func (c Computation) Word() isa.Word {
	return isa.ComputeWord(c.Comp, c.Dest, c.Jump)
}

func (c Computation) String() string {
	s := c.Comp.String()
	if c.Dest != isa.DestNone {
		s = c.Dest.String() + destSeparator + s
	}
	if c.Jump != isa.JumpNone {
		s += jumpSeparator + c.Jump.String()
	}
	return s
}
