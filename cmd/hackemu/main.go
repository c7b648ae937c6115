// Command hackemu runs a Hack program on the emulated CPU and prints the
// final machine state.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/sarchlab/hackasm/config"
	"github.com/sarchlab/hackasm/core"
	"github.com/sarchlab/hackasm/isa"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	maxCycles   uint64
	ramWindow   string
	pokes       []string
	showSymbols bool
	dumpState   bool
	trace       bool
)

var rootCmd = &cobra.Command{
	Use:   "hackemu program.{asm,hack}",
	Short: "Run a Hack program on the emulator",
	Long: `hackemu loads a Hack program, assembling it first when it is an .asm file,
and runs it until it reaches its end loop, leaves ROM, or exhausts the
cycle budget. The registers and a window of RAM are printed afterwards.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.Uint64Var(&maxCycles, "cycles", 1_000_000, "stop after this many instructions (0 for no limit)")
	flags.StringVar(&ramWindow, "ram", "0:16", "RAM range to print, as from:to")
	flags.StringSliceVar(&pokes, "poke", nil, "preload RAM, as addr=value")
	flags.BoolVar(&showSymbols, "symbols", false, "print the symbol table of an .asm program")
	flags.BoolVar(&dumpState, "dump", false, "pretty-print the final register snapshot")
	flags.BoolVar(&trace, "trace", false, "log every executed instruction")
}

func parseRange(s string) (int, int, error) {
	fromText, toText, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad range %q, want from:to", s)
	}

	from, err := strconv.Atoi(fromText)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range start %q: %w", fromText, err)
	}

	to, err := strconv.Atoi(toText)
	if err != nil {
		return 0, 0, fmt.Errorf("bad range end %q: %w", toText, err)
	}

	return from, to, nil
}

func parsePoke(s string) (uint16, uint16, error) {
	addrText, valueText, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("bad poke %q, want addr=value", s)
	}

	addr, err := strconv.ParseUint(addrText, 10, 15)
	if err != nil {
		return 0, 0, fmt.Errorf("bad poke address %q: %w", addrText, err)
	}
	if addr >= isa.RAMSize {
		return 0, 0, fmt.Errorf("bad poke address %d: RAM has %d words", addr, isa.RAMSize)
	}

	value, err := strconv.ParseInt(valueText, 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("bad poke value %q: %w", valueText, err)
	}

	return uint16(addr), uint16(value), nil
}

func load(m *config.Machine, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q for reading: %w", path, err)
	}
	defer in.Close()

	if filepath.Ext(path) == ".hack" {
		if showSymbols {
			slog.Warn("No symbols in assembled input", "Path", path)
		}

		return m.LoadHack(in)
	}

	symbols, err := m.LoadSource(in)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if showSymbols {
		symbols.WriteListing(os.Stdout, false)
	}

	return nil
}

func run(path string) error {
	from, to, err := parseRange(ramWindow)
	if err != nil {
		return err
	}

	m := config.MachineBuilder{}.
		WithMaxCycles(maxCycles).
		Build("Hack")

	if err := load(m, path); err != nil {
		return err
	}

	for _, p := range pokes {
		addr, value, err := parsePoke(p)
		if err != nil {
			return err
		}
		m.CPU.WriteMemory(addr, value)
	}

	state, err := m.Run()
	if err != nil {
		return err
	}

	m.CPU.WriteState(os.Stdout, from, to)

	if dumpState {
		pp.Println(state)
	}

	if state.Halt == core.HaltCycleLimit {
		slog.Warn("Cycle limit reached", "Cycles", state.Cycles)
	}

	return nil
}

// setupLogging hides per-instruction traces unless --trace is given.
func setupLogging() {
	level := core.LevelTrace + 1
	if trace {
		level = core.LevelTrace
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Run failed", "Error", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
