// Package asm translates Hack assembly into 16-bit machine words in two
// passes: label resolution, then encoding.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sarchlab/hackasm/isa"
	"github.com/sarchlab/hackasm/symbol"
)

// OutputExt is the extension of assembled files.
const OutputExt = ".hack"

// Assembler translates programs. Every run gets its own symbol table, so
// variable allocation starts from the base address each time.
type Assembler struct {
	symbols *symbol.Table
}

// New creates an assembler with a fresh symbol table.
func New() *Assembler {
	return &Assembler{symbols: symbol.NewTable()}
}

// Symbols returns the symbol table as left by the last run.
func (a *Assembler) Symbols() *symbol.Table {
	return a.symbols
}

// Translate runs both passes over prepared lines. Each call starts from a
// fresh symbol table.
func (a *Assembler) Translate(lines []Line) ([]isa.Word, error) {
	a.symbols = symbol.NewTable()

	instructions, err := ResolveLabels(lines, a.symbols)
	if err != nil {
		return nil, err
	}

	return Encode(instructions, a.symbols)
}

// AssembleWords reads a program from r and translates it.
func (a *Assembler) AssembleWords(r io.Reader) ([]isa.Word, error) {
	lines, err := Prepare(r)
	if err != nil {
		return nil, err
	}

	return a.Translate(lines)
}

// Assemble reads a program from r and writes one 16-digit line per
// instruction to w. Nothing is written unless the whole program translates.
func (a *Assembler) Assemble(r io.Reader, w io.Writer) error {
	words, err := a.AssembleWords(r)
	if err != nil {
		return err
	}

	return WriteWords(w, words)
}

// WriteWords writes words in their text form, one per line.
func WriteWords(w io.Writer, words []isa.Word) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintln(bw, word); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// OutputPath derives the output file name by replacing the extension of the
// source path.
func OutputPath(source string) string {
	return source[:len(source)-len(filepath.Ext(source))] + OutputExt
}
