// Package symbol provides the symbol table shared by both assembler passes.
package symbol

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/sarchlab/hackasm/isa"
)

var (
	// ErrRedefined is returned when a name is bound again to a different
	// address.
	ErrRedefined = errors.New("symbol redefined")

	// ErrAddressSpaceExhausted is returned when variable allocation would run
	// into the memory-mapped screen.
	ErrAddressSpaceExhausted = errors.New("variable address space exhausted")
)

// Kind tells how a symbol got its address.
type Kind int

// Kinds of symbols.
const (
	Architectural Kind = iota
	Label
	Variable
)

func (k Kind) String() string {
	switch k {
	case Architectural:
		return "architectural"
	case Label:
		return "label"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Entry is a bound symbol.
type Entry struct {
	Name    string
	Address uint16
	Kind    Kind
}

var architectural = func() []Entry {
	entries := make([]Entry, 0, isa.RegisterCount+7)
	for i := 0; i < isa.RegisterCount; i++ {
		entries = append(entries, Entry{fmt.Sprintf("R%d", i), uint16(i), Architectural})
	}

	return append(entries,
		Entry{"SCREEN", isa.ScreenBase, Architectural},
		Entry{"KBD", isa.KeyboardAddr, Architectural},
		Entry{"SP", isa.SP, Architectural},
		Entry{"LCL", isa.LCL, Architectural},
		Entry{"ARG", isa.ARG, Architectural},
		Entry{"THIS", isa.THIS, Architectural},
		Entry{"THAT", isa.THAT, Architectural},
	)
}()

// Table maps symbol names to addresses. A Table belongs to a single assembler
// run; the variable cursor is never shared between tables.
type Table struct {
	symbols      map[string]Entry
	nextVariable uint16
}

// NewTable creates a table pre-seeded with the architectural symbols.
func NewTable() *Table {
	t := &Table{
		symbols:      make(map[string]Entry, len(architectural)),
		nextVariable: isa.VariableBase,
	}

	for _, e := range architectural {
		t.symbols[e.Name] = e
	}

	return t
}

// Lookup returns the address bound to name.
func (t *Table) Lookup(name string) (uint16, bool) {
	e, ok := t.symbols[name]
	return e.Address, ok
}

// IsArchitectural reports whether name is one of the fixed machine symbols.
func (t *Table) IsArchitectural(name string) bool {
	e, ok := t.symbols[name]
	return ok && e.Kind == Architectural
}

// Define binds a label to address. Binding a name again to the same address
// is a no-op; binding it to another address fails and leaves the table
// unchanged.
func (t *Table) Define(name string, address uint16) error {
	if e, ok := t.symbols[name]; ok {
		if e.Address != address {
			return fmt.Errorf("%w: %q is %s %d, cannot bind to %d",
				ErrRedefined, name, e.Kind, e.Address, address)
		}

		return nil
	}

	t.symbols[name] = Entry{Name: name, Address: address, Kind: Label}
	slog.Debug("LabelResolved", "Name", name, "Address", address)

	return nil
}

// AllocateVariable returns the address of name, binding it to the next free
// variable address if it is not yet known.
func (t *Table) AllocateVariable(name string) (uint16, error) {
	if e, ok := t.symbols[name]; ok {
		return e.Address, nil
	}

	if t.nextVariable >= isa.ScreenBase {
		return 0, fmt.Errorf("%w: no room for %q", ErrAddressSpaceExhausted, name)
	}

	address := t.nextVariable
	t.nextVariable++
	t.symbols[name] = Entry{Name: name, Address: address, Kind: Variable}
	slog.Debug("VariableAllocated", "Name", name, "Address", address)

	return address, nil
}

// Entries returns every bound symbol ordered by address, then name.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.symbols))
	for _, e := range t.symbols {
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
