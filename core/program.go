package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/hackasm/isa"
)

const maxLineLength = 1 << 20

// LoadHack reads a program in the assembler's text output format: one
// 16-digit binary word per line. Blank lines are skipped.
func LoadHack(r io.Reader) ([]isa.Word, error) {
	var words []isa.Word

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		w, err := isa.ParseWord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		words = append(words, w)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
