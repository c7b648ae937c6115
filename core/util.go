package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1

	ramRowWidth = 8
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// WriteState renders the registers and the RAM words in [from, to).
func (c *Core) WriteState(w io.Writer, from, to int) {
	s := c.State()

	regTable := table.NewWriter()
	regTable.SetTitle(fmt.Sprintf("%s registers", c.Name()))
	regTable.AppendHeader(table.Row{"A", "D", "PC", "Cycles", "Status"})
	regTable.AppendRow(table.Row{
		int16(s.A), int16(s.D), s.PC, s.Cycles, s.Halt,
	})

	fmt.Fprintln(w, regTable.Render())

	if to > len(c.state.RAM) {
		to = len(c.state.RAM)
	}
	if from < 0 || from >= to {
		return
	}

	ramTable := table.NewWriter()
	ramTable.SetTitle(fmt.Sprintf("RAM[%d:%d]", from, to))

	header := table.Row{"Addr"}
	for i := 0; i < ramRowWidth; i++ {
		header = append(header, fmt.Sprintf("+%d", i))
	}
	ramTable.AppendHeader(header)

	for base := from; base < to; base += ramRowWidth {
		row := table.Row{base}
		for addr := base; addr < base+ramRowWidth && addr < to; addr++ {
			row = append(row, int16(c.state.RAM[addr]))
		}
		ramTable.AppendRow(row)
	}

	fmt.Fprintln(w, ramTable.Render())
}

func LogState(state *coreState) {
	slog.Debug("StateCheckpoint",
		"A", state.A,
		"D", state.D,
		"PC", state.PC,
		"Cycles", state.Cycles,
		"Halt", state.Halt.String(),
	)
}
