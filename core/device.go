package core

// Keyboard supplies the value of the memory-mapped keyboard register.
type Keyboard interface {
	// Key returns the code of the key currently pressed, or 0.
	Key() uint16
}

// Screen receives writes to the memory-mapped screen.
type Screen interface {
	// Write is called with the word offset from the screen base.
	Write(offset uint16, value uint16)
}
