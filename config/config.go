// Package config provides a default configuration for a Hack machine: one
// core driven by a serial akita engine.
package config

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hackasm/core"
)

// MachineBuilder can build Hack machines.
type MachineBuilder struct {
	engine    sim.Engine
	freq      sim.Freq
	maxCycles uint64
	keyboard  core.Keyboard
	screen    core.Screen
}

// WithEngine sets the engine that drives the machine simulation. A serial
// engine is created when none is given.
func (b MachineBuilder) WithEngine(engine sim.Engine) MachineBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the machine.
func (b MachineBuilder) WithFreq(freq sim.Freq) MachineBuilder {
	b.freq = freq
	return b
}

// WithMaxCycles bounds the number of executed instructions. Zero means no
// limit.
func (b MachineBuilder) WithMaxCycles(cycles uint64) MachineBuilder {
	b.maxCycles = cycles
	return b
}

// WithKeyboard attaches a keyboard.
func (b MachineBuilder) WithKeyboard(keyboard core.Keyboard) MachineBuilder {
	b.keyboard = keyboard
	return b
}

// WithScreen attaches a screen.
func (b MachineBuilder) WithScreen(screen core.Screen) MachineBuilder {
	b.screen = screen
	return b
}

// Build creates a machine.
func (b MachineBuilder) Build(name string) *Machine {
	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	cpu := core.NewBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithMaxCycles(b.maxCycles).
		WithKeyboard(b.keyboard).
		WithScreen(b.screen).
		Build(name + ".Core")

	return &Machine{
		Name:   name,
		Engine: engine,
		CPU:    cpu,
	}
}
