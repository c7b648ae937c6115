package vm

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/sarchlab/hackasm/isa"
)

const (
	endLabel = "END"

	// Scratch registers used by pop and return.
	scratch    = "R13"
	scratchRet = "R14"
)

var segmentBase = map[Segment]string{
	Local:    "LCL",
	Argument: "ARG",
	This:     "THIS",
	That:     "THAT",
}

var binaryComp = map[string]string{
	"add": "D+M",
	"sub": "M-D",
	"and": "D&M",
	"or":  "D|M",
}

var unaryComp = map[string]string{
	"neg": "-M",
	"not": "!M",
}

var compareJump = map[string]string{
	"eq": "JEQ",
	"gt": "JGT",
	"lt": "JLT",
}

// CodeWriter emits assembly for VM commands of one module.
type CodeWriter struct {
	w        *bufio.Writer
	module   string
	function string
	labels   int
}

// NewCodeWriter creates a writer. Static variables are named after module.
func NewCodeWriter(w io.Writer, module string) *CodeWriter {
	return &CodeWriter{
		w:      bufio.NewWriter(w),
		module: module,
	}
}

func (cw *CodeWriter) emit(lines ...string) {
	for _, l := range lines {
		cw.w.WriteString(l)
		cw.w.WriteByte('\n')
	}
}

func (cw *CodeWriter) comment(text string) {
	cw.emit("// " + text)
}

func (cw *CodeWriter) nextLabel(kind string) string {
	cw.labels++
	return fmt.Sprintf("%s.%s%d", cw.scope(), kind, cw.labels)
}

func (cw *CodeWriter) scope() string {
	if cw.function != "" {
		return cw.function
	}
	return cw.module
}

// WriteBootstrap points SP at the stack base.
func (cw *CodeWriter) WriteBootstrap() {
	cw.comment("Initialize stack pointer")
	cw.emit(fmt.Sprintf("@%d", isa.StackBase), "D=A", "@SP", "M=D", "")
}

// WriteEnd appends the terminal loop.
func (cw *CodeWriter) WriteEnd() {
	cw.comment("Final loop")
	cw.emit("("+endLabel+")", "@"+endLabel, "0;JMP")
}

// Flush writes buffered output.
func (cw *CodeWriter) Flush() error {
	return cw.w.Flush()
}

// Write emits the assembly for one command, preceded by the command as a
// comment.
func (cw *CodeWriter) Write(cmd Command) error {
	cw.comment(cmd.String())

	switch cmd.Type {
	case Arithmetic:
		cw.writeArithmetic(cmd.Name)
	case Push:
		cw.writePush(cmd.Segment, cmd.Index)
	case Pop:
		cw.writePop(cmd.Segment, cmd.Index)
	case Label:
		cw.emit(fmt.Sprintf("(%s$%s)", cw.scope(), cmd.Name))
	case Goto:
		cw.emit(fmt.Sprintf("@%s$%s", cw.scope(), cmd.Name), "0;JMP")
	case IfGoto:
		cw.popD()
		cw.emit(fmt.Sprintf("@%s$%s", cw.scope(), cmd.Name), "D;JNE")
	case Function:
		cw.writeFunction(cmd.Name, cmd.Index)
	case Call:
		cw.writeCall(cmd.Name, cmd.Index)
	case Return:
		cw.writeReturn()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}

	cw.emit("")

	return nil
}

func (cw *CodeWriter) pushD() {
	cw.emit("@SP", "A=M", "M=D", "@SP", "M=M+1")
}

func (cw *CodeWriter) popD() {
	cw.emit("@SP", "AM=M-1", "D=M")
}

func (cw *CodeWriter) writeArithmetic(op string) {
	if comp, ok := unaryComp[op]; ok {
		cw.emit("@SP", "A=M-1", "M="+comp)
		return
	}

	cw.popD()
	cw.emit("A=A-1")

	if comp, ok := binaryComp[op]; ok {
		cw.emit("M=" + comp)
		return
	}

	done := cw.nextLabel("cmp")
	cw.emit(
		"D=M-D",
		"M=-1",
		"@"+done,
		"D;"+compareJump[op],
		"@SP",
		"A=M-1",
		"M=0",
		"("+done+")",
	)
}

func (cw *CodeWriter) staticSymbol(index int) string {
	return fmt.Sprintf("%s.%d", cw.module, index)
}

func (cw *CodeWriter) pointerSymbol(index int) string {
	if index == 0 {
		return "THIS"
	}
	return "THAT"
}

func (cw *CodeWriter) writePush(seg Segment, index int) {
	switch seg {
	case Constant:
		cw.emit(fmt.Sprintf("@%d", index), "D=A")
	case Static:
		cw.emit("@"+cw.staticSymbol(index), "D=M")
	case Temp:
		cw.emit(fmt.Sprintf("@%d", isa.TempBase+index), "D=M")
	case Pointer:
		cw.emit("@"+cw.pointerSymbol(index), "D=M")
	default:
		cw.emit("@"+segmentBase[seg], "D=M", fmt.Sprintf("@%d", index), "A=D+A", "D=M")
	}

	cw.pushD()
}

func (cw *CodeWriter) writePop(seg Segment, index int) {
	var target string

	switch seg {
	case Static:
		target = cw.staticSymbol(index)
	case Temp:
		target = fmt.Sprintf("%d", isa.TempBase+index)
	case Pointer:
		target = cw.pointerSymbol(index)
	default:
		cw.emit(
			"@"+segmentBase[seg], "D=M",
			fmt.Sprintf("@%d", index), "D=D+A",
			"@"+scratch, "M=D",
		)
		cw.popD()
		cw.emit("@"+scratch, "A=M", "M=D")
		return
	}

	cw.popD()
	cw.emit("@"+target, "M=D")
}

func (cw *CodeWriter) writeFunction(name string, locals int) {
	cw.function = name
	cw.emit("(" + name + ")")

	for i := 0; i < locals; i++ {
		cw.emit("@SP", "A=M", "M=0", "@SP", "M=M+1")
	}
}

func (cw *CodeWriter) writeCall(name string, args int) {
	ret := cw.nextLabel("ret")

	cw.emit("@"+ret, "D=A")
	cw.pushD()
	for _, reg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		cw.emit("@"+reg, "D=M")
		cw.pushD()
	}

	cw.emit(
		"@SP", "D=M",
		fmt.Sprintf("@%d", args+5), "D=D-A",
		"@ARG", "M=D",
		"@SP", "D=M",
		"@LCL", "M=D",
		"@"+name, "0;JMP",
		"("+ret+")",
	)
}

func (cw *CodeWriter) writeReturn() {
	cw.emit(
		"@LCL", "D=M",
		"@"+scratch, "M=D",
		"@5", "A=D-A", "D=M",
		"@"+scratchRet, "M=D",
	)
	cw.popD()
	cw.emit(
		"@ARG", "A=M", "M=D",
		"@ARG", "D=M+1",
		"@SP", "M=D",
	)

	for _, reg := range []string{"THAT", "THIS", "ARG", "LCL"} {
		cw.emit("@"+scratch, "AM=M-1", "D=M", "@"+reg, "M=D")
	}

	cw.emit("@"+scratchRet, "A=M", "0;JMP")
}

// Translate parses VM commands from r and writes a complete assembly program
// to w: bootstrap, commands, final loop. Nothing is written if any command
// fails to parse.
func Translate(r io.Reader, w io.Writer, module string) error {
	commands, err := Parse(r)
	if err != nil {
		return err
	}

	var out strings.Builder
	cw := NewCodeWriter(&out, module)

	cw.WriteBootstrap()
	for _, cmd := range commands {
		if err := cw.Write(cmd); err != nil {
			return fmt.Errorf("line %d: %w", cmd.Line, err)
		}
	}
	cw.WriteEnd()

	if err := cw.Flush(); err != nil {
		return err
	}

	_, err = io.WriteString(w, out.String())
	return err
}

// ModuleName derives the static-variable prefix from a file path.
func ModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath replaces the extension of a VM file with .asm.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".asm"
}
