package core

import (
	"github.com/sarchlab/hackasm/isa"
)

// HaltReason tells why the core stopped fetching instructions.
type HaltReason int

// Halt reasons.
const (
	Running HaltReason = iota
	HaltLoop
	HaltPCOutOfRange
	HaltCycleLimit
)

func (r HaltReason) String() string {
	switch r {
	case Running:
		return "running"
	case HaltLoop:
		return "halt loop"
	case HaltPCOutOfRange:
		return "pc out of range"
	case HaltCycleLimit:
		return "cycle limit"
	default:
		return "unknown"
	}
}

type coreState struct {
	A, D, PC uint16
	ROM      []isa.Word
	RAM      []uint16

	Cycles    uint64
	MaxCycles uint64
	Halt      HaltReason
}

type instEmulator struct {
	keyboard Keyboard
	screen   Screen
}

// RunInst executes one word against the state.
func (i instEmulator) RunInst(w isa.Word, state *coreState) {
	if w.IsAddress() {
		state.A = w.Value()
		state.PC++
		return
	}

	i.runCompute(w, state)
}

func (i instEmulator) runCompute(w isa.Word, state *coreState) {
	addr := state.A

	y := state.A
	if w.UsesMemory() {
		y = i.readMemory(addr, state)
	}

	out := isa.ALU(state.D, y, w.ALUControl())

	// M is addressed and the jump target taken from A as it was before this
	// instruction wrote it.
	dest := w.Dest()
	if dest.M() {
		i.writeMemory(addr, out, state)
	}
	if dest.A() {
		state.A = out
	}
	if dest.D() {
		state.D = out
	}

	if w.Jump().Taken(out) {
		state.PC = addr
	} else {
		state.PC++
	}
}

func (i instEmulator) readMemory(addr uint16, state *coreState) uint16 {
	if addr == isa.KeyboardAddr && i.keyboard != nil {
		return i.keyboard.Key()
	}

	if int(addr) >= len(state.RAM) {
		Trace("Memory", "Behavior", "InvalidRead", "Addr", addr, "PC", state.PC)
		return 0
	}

	return state.RAM[addr]
}

func (i instEmulator) writeMemory(addr, value uint16, state *coreState) {
	if int(addr) >= len(state.RAM) {
		Trace("Memory", "Behavior", "InvalidWrite", "Addr", addr, "PC", state.PC)
		return
	}

	state.RAM[addr] = value

	if addr >= isa.ScreenBase && addr < isa.KeyboardAddr && i.screen != nil {
		i.screen.Write(addr-isa.ScreenBase, value)
	}
}

// haltCheck decides, before fetching, whether the core should stop.
func haltCheck(state *coreState) HaltReason {
	switch {
	case int(state.PC) >= len(state.ROM):
		return HaltPCOutOfRange
	case state.MaxCycles > 0 && state.Cycles >= state.MaxCycles:
		return HaltCycleLimit
	case isHaltLoop(state.ROM, state.PC):
		return HaltLoop
	default:
		return Running
	}
}

// isHaltLoop recognizes the "(END) @END 0;JMP" idiom starting at pc.
func isHaltLoop(rom []isa.Word, pc uint16) bool {
	if int(pc)+1 >= len(rom) {
		return false
	}

	load, jump := rom[pc], rom[pc+1]

	return load.IsAddress() && load.Value() == pc &&
		!jump.IsAddress() && jump.Jump() == isa.JumpJMP && jump.Dest() == isa.DestNone
}
