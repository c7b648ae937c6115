package vm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/hackasm/asm"
	"github.com/sarchlab/hackasm/isa"
)

// Parse reads every command from r.
func Parse(r io.Reader) ([]Command, error) {
	var commands []Command

	scanner := asm.NewLineScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		text := asm.Clean(scanner.Text())
		if text == "" {
			continue
		}

		cmd, err := ParseCommand(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, text, err)
		}

		cmd.Line = lineNo
		commands = append(commands, cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return commands, nil
}

// ParseCommand parses one cleaned line.
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	op, args := fields[0], fields[1:]

	if arithmeticOps[op] {
		if err := arity(op, args, 0); err != nil {
			return Command{}, err
		}
		return Command{Type: Arithmetic, Name: op}, nil
	}

	switch op {
	case "push", "pop":
		return parseMemoryAccess(op, args)
	case "label", "goto", "if-goto":
		if err := arity(op, args, 1); err != nil {
			return Command{}, err
		}
		types := map[string]CommandType{"label": Label, "goto": Goto, "if-goto": IfGoto}
		return Command{Type: types[op], Name: args[0]}, nil
	case "function", "call":
		if err := arity(op, args, 2); err != nil {
			return Command{}, err
		}
		n, err := parseIndex(args[1])
		if err != nil {
			return Command{}, err
		}
		t := Function
		if op == "call" {
			t = Call
		}
		return Command{Type: t, Name: args[0], Index: n}, nil
	case "return":
		if err := arity(op, args, 0); err != nil {
			return Command{}, err
		}
		return Command{Type: Return}, nil
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, op)
	}
}

func arity(op string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrUnknownCommand, op, n, len(args))
	}
	return nil
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > isa.MaxAddress {
		return 0, fmt.Errorf("%w: %s", ErrBadIndex, s)
	}
	return n, nil
}

func parseMemoryAccess(op string, args []string) (Command, error) {
	if err := arity(op, args, 2); err != nil {
		return Command{}, err
	}

	seg, ok := segments[args[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrBadSegment, args[0])
	}

	index, err := parseIndex(args[1])
	if err != nil {
		return Command{}, err
	}

	cmd := Command{Type: Push, Segment: seg, Index: index}
	if op == "pop" {
		cmd.Type = Pop
	}

	switch {
	case cmd.Type == Pop && seg == Constant:
		return Command{}, fmt.Errorf("%w: cannot pop to constant", ErrBadSegment)
	case seg == Pointer && index > 1:
		return Command{}, fmt.Errorf("%w: pointer %d", ErrBadIndex, index)
	case seg == Temp && index >= isa.TempSize:
		return Command{}, fmt.Errorf("%w: temp %d", ErrBadIndex, index)
	}

	return cmd, nil
}
