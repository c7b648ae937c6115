package isa

// ALU control bits, from the most significant of the six.
const (
	aluZX = 1 << (5 - iota)
	aluNX
	aluZY
	aluNY
	aluF
	aluNO
)

func aluAdd(x, y uint16) uint16 {
	return x + y
}

func aluAnd(x, y uint16) uint16 {
	return x & y
}

func aluNot(x uint16) uint16 {
	return ^x
}

// ALU computes the Hack ALU output for operands x and y under the six control
// bits zx nx zy ny f no, as returned by Word.ALUControl.
func ALU(x, y uint16, control uint16) uint16 {
	if control&aluZX != 0 {
		x = 0
	}
	if control&aluNX != 0 {
		x = aluNot(x)
	}
	if control&aluZY != 0 {
		y = 0
	}
	if control&aluNY != 0 {
		y = aluNot(y)
	}

	var out uint16
	if control&aluF != 0 {
		out = aluAdd(x, y)
	} else {
		out = aluAnd(x, y)
	}

	if control&aluNO != 0 {
		out = aluNot(out)
	}

	return out
}
