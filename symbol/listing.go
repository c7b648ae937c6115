package symbol

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteListing renders the table. Architectural symbols are omitted unless
// withArchitectural is set.
func (t *Table) WriteListing(w io.Writer, withArchitectural bool) {
	listing := table.NewWriter()
	listing.SetTitle("Symbols")
	listing.AppendHeader(table.Row{"Name", "Address", "Hex", "Kind"})

	for _, e := range t.Entries() {
		if e.Kind == Architectural && !withArchitectural {
			continue
		}

		listing.AppendRow(table.Row{e.Name, e.Address, fmt.Sprintf("0x%04x", e.Address), e.Kind})
	}

	fmt.Fprintln(w, listing.Render())
}
