package isa

// Memory map of the Hack machine.
const (
	// MaxAddress is the largest value a reference instruction can load.
	MaxAddress = 1<<15 - 1

	// RegisterCount is the number of R0..R15 aliases at the bottom of RAM.
	RegisterCount = 16

	// VariableBase is the first address handed out to variable symbols.
	VariableBase = 16

	// ScreenBase is the start of the memory-mapped screen.
	ScreenBase = 16384

	// ScreenSize is the number of words in the screen map.
	ScreenSize = 8192

	// KeyboardAddr is the memory-mapped keyboard register.
	KeyboardAddr = ScreenBase + ScreenSize

	// RAMSize is the number of addressable data words.
	RAMSize = KeyboardAddr + 1

	// ROMSize is the number of instruction words.
	ROMSize = MaxAddress + 1

	// StackBase is where the VM bootstrap code points SP.
	StackBase = 256

	// TempBase is the first of the eight temp segment registers (R5..R12).
	TempBase = 5

	// TempSize is the length of the temp segment.
	TempSize = 8
)

// Pointer register addresses.
const (
	SP = iota
	LCL
	ARG
	THIS
	THAT
)
