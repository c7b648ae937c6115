package config

import (
	"fmt"
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/hackasm/asm"
	"github.com/sarchlab/hackasm/core"
	"github.com/sarchlab/hackasm/isa"
	"github.com/sarchlab/hackasm/symbol"
)

// A Machine is a Hack computer: a CPU with its ROM and RAM.
type Machine struct {
	Name   string
	Engine sim.Engine
	CPU    *core.Core
}

// Load places an assembled program in ROM.
func (m *Machine) Load(words []isa.Word) error {
	return m.CPU.LoadProgram(words)
}

// LoadHack reads assembler output and places it in ROM.
func (m *Machine) LoadHack(r io.Reader) error {
	words, err := core.LoadHack(r)
	if err != nil {
		return err
	}

	return m.Load(words)
}

// LoadSource assembles r and places the result in ROM. The symbol table of
// the run is returned for inspection.
func (m *Machine) LoadSource(r io.Reader) (*symbol.Table, error) {
	a := asm.New()

	words, err := a.AssembleWords(r)
	if err != nil {
		return nil, err
	}

	return a.Symbols(), m.Load(words)
}

// Run executes the loaded program until the CPU halts.
func (m *Machine) Run() (core.State, error) {
	m.CPU.TickNow()

	if err := m.Engine.Run(); err != nil {
		return m.CPU.State(), fmt.Errorf("running %s: %w", m.Name, err)
	}

	return m.CPU.State(), nil
}
