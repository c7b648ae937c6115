// Package core emulates the Hack CPU as an akita ticking component. Each tick
// fetches and executes one instruction from ROM.
package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hackasm/isa"
)

// ErrProgramTooLarge is returned when a program does not fit in ROM.
var ErrProgramTooLarge = errors.New("program too large for ROM")

// State is a snapshot of the CPU registers.
type State struct {
	A, D, PC uint16
	Cycles   uint64
	Halt     HaltReason
}

// Core is a Hack CPU with its instruction and data memory.
type Core struct {
	*sim.TickingComponent

	state coreState
	emu   instEmulator
}

// LoadProgram copies words into ROM and resets the registers and the cycle
// counter. RAM is left untouched.
func (c *Core) LoadProgram(words []isa.Word) error {
	if len(words) > isa.ROMSize {
		return fmt.Errorf("%w: %d words", ErrProgramTooLarge, len(words))
	}

	c.state.ROM = append(c.state.ROM[:0], words...)
	c.state.A, c.state.D, c.state.PC = 0, 0, 0
	c.state.Cycles = 0
	c.state.Halt = Running

	Trace("Program",
		"Behavior", "LoadProgram",
		"Name", c.Name(),
		"Words", len(words),
	)

	return nil
}

// ReadMemory returns RAM[addr]. The keyboard is not consulted.
func (c *Core) ReadMemory(addr uint16) uint16 {
	if int(addr) >= len(c.state.RAM) {
		panic(fmt.Sprintf("address %d outside RAM of %d words", addr, len(c.state.RAM)))
	}

	return c.state.RAM[addr]
}

// WriteMemory sets RAM[addr], for preloading inputs.
func (c *Core) WriteMemory(addr uint16, value uint16) {
	if int(addr) >= len(c.state.RAM) {
		panic(fmt.Sprintf("address %d outside RAM of %d words", addr, len(c.state.RAM)))
	}

	c.state.RAM[addr] = value
}

// State returns the current register snapshot.
func (c *Core) State() State {
	return State{
		A:      c.state.A,
		D:      c.state.D,
		PC:     c.state.PC,
		Cycles: c.state.Cycles,
		Halt:   c.state.Halt,
	}
}

// Halted reports whether the core has stopped.
func (c *Core) Halted() bool {
	return c.state.Halt != Running
}

// Tick runs one instruction.
func (c *Core) Tick() (madeProgress bool) {
	if c.Halted() {
		return false
	}

	if reason := haltCheck(&c.state); reason != Running {
		c.state.Halt = reason
		Trace("Halt",
			"Name", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Reason", reason.String(),
			"PC", c.state.PC,
			"Cycles", c.state.Cycles,
		)
		LogState(&c.state)

		return false
	}

	pc := c.state.PC
	w := c.state.ROM[pc]
	c.emu.RunInst(w, &c.state)
	c.state.Cycles++

	Trace("Inst",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"PC", pc,
		"Word", w.String(),
		"A", c.state.A,
		"D", c.state.D,
	)

	return true
}
