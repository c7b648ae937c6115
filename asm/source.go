package asm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	commentMarker = "//"

	// MaxLineLength bounds a single source line, comment included.
	MaxLineLength = 1 << 20
)

// Line is a cleaned, non-empty source line with its 1-based position in the
// original file.
type Line struct {
	Number int
	Text   string
}

// Kind classifies a cleaned line.
type Kind int

// Line kinds.
const (
	LabelDeclaration Kind = iota
	ReferenceInstruction
	ComputationInstruction
)

func (k Kind) String() string {
	switch k {
	case LabelDeclaration:
		return "label"
	case ReferenceInstruction:
		return "reference"
	case ComputationInstruction:
		return "computation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Clean strips the trailing comment and surrounding whitespace of a raw line.
func Clean(raw string) string {
	if i := strings.Index(raw, commentMarker); i >= 0 {
		raw = raw[:i]
	}

	return strings.TrimSpace(raw)
}

// Prepare reads r and returns its non-empty cleaned lines. Blank and
// comment-only lines are dropped but still counted in line numbers.
func Prepare(r io.Reader) ([]Line, error) {
	var lines []Line

	scanner := NewLineScanner(r)
	number := 0
	for scanner.Scan() {
		number++

		text := Clean(scanner.Text())
		if text == "" {
			continue
		}

		lines = append(lines, Line{Number: number, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	return lines, nil
}

// NewLineScanner returns a line scanner that accepts lines up to
// MaxLineLength bytes.
func NewLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLength)

	return scanner
}

// Classify tells what a cleaned, non-empty line is.
func Classify(text string) Kind {
	switch {
	case strings.HasPrefix(text, "("):
		return LabelDeclaration
	case strings.HasPrefix(text, "@"):
		return ReferenceInstruction
	default:
		return ComputationInstruction
	}
}
