package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hackasm/isa"
)

// Builder can create new cores.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	ramSize   int
	maxCycles uint64
	keyboard  Keyboard
	screen    Screen
}

// NewBuilder returns a builder for a core with the full Hack RAM.
func NewBuilder() Builder {
	return Builder{
		freq:    1 * sim.GHz,
		ramSize: isa.RAMSize,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithRAMSize sets the number of data words.
func (b Builder) WithRAMSize(words int) Builder {
	if words <= 0 || words > isa.MaxAddress+1 {
		panic("RAM size must be within the 15-bit address space")
	}
	b.ramSize = words
	return b
}

// WithMaxCycles stops the core after the given number of instructions. Zero
// means no limit.
func (b Builder) WithMaxCycles(cycles uint64) Builder {
	b.maxCycles = cycles
	return b
}

// WithKeyboard attaches a keyboard to the KBD register.
func (b Builder) WithKeyboard(keyboard Keyboard) Builder {
	b.keyboard = keyboard
	return b
}

// WithScreen attaches a screen to the screen memory map.
func (b Builder) WithScreen(screen Screen) Builder {
	b.screen = screen
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	c := &Core{}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.state = coreState{
		RAM:       make([]uint16, b.ramSize),
		MaxCycles: b.maxCycles,
	}
	c.emu = instEmulator{
		keyboard: b.keyboard,
		screen:   b.screen,
	}

	return c
}
