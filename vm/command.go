// Package vm translates the stack-based VM language into Hack assembly that
// the asm package can assemble.
package vm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned for an unrecognized command or a command
	// with the wrong number of arguments.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrBadSegment is returned for an unknown segment or a segment that
	// cannot be used with the command.
	ErrBadSegment = errors.New("bad segment")

	// ErrBadIndex is returned for an index that is not a number or is out of
	// the segment's range.
	ErrBadIndex = errors.New("bad index")
)

// CommandType is the kind of a VM command.
type CommandType int

// Command types.
const (
	Arithmetic CommandType = iota
	Push
	Pop
	Label
	Goto
	IfGoto
	Function
	Call
	Return
)

// Segment is a virtual memory segment.
type Segment string

// Segments.
const (
	Constant Segment = "constant"
	Local    Segment = "local"
	Argument Segment = "argument"
	This     Segment = "this"
	That     Segment = "that"
	Static   Segment = "static"
	Temp     Segment = "temp"
	Pointer  Segment = "pointer"
)

var segments = map[string]Segment{
	"constant": Constant,
	"local":    Local,
	"argument": Argument,
	"this":     This,
	"that":     That,
	"static":   Static,
	"temp":     Temp,
	"pointer":  Pointer,
}

var arithmeticOps = map[string]bool{
	"add": true, "sub": true, "neg": true,
	"eq": true, "gt": true, "lt": true,
	"and": true, "or": true, "not": true,
}

// Command is one parsed VM command.
//
// For Arithmetic, Name is the operation. For Push and Pop, Segment and Index
// are set. For Label, Goto and IfGoto, Name is the label. For Function and
// Call, Name is the function and Index the local or argument count.
type Command struct {
	Type    CommandType
	Name    string
	Segment Segment
	Index   int
	Line    int
}

func (c Command) String() string {
	switch c.Type {
	case Arithmetic:
		return c.Name
	case Push:
		return fmt.Sprintf("push %s %d", c.Segment, c.Index)
	case Pop:
		return fmt.Sprintf("pop %s %d", c.Segment, c.Index)
	case Label:
		return "label " + c.Name
	case Goto:
		return "goto " + c.Name
	case IfGoto:
		return "if-goto " + c.Name
	case Function:
		return fmt.Sprintf("function %s %d", c.Name, c.Index)
	case Call:
		return fmt.Sprintf("call %s %d", c.Name, c.Index)
	case Return:
		return "return"
	default:
		return fmt.Sprintf("Command(%d)", int(c.Type))
	}
}
