package tac

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Emitter writes quadruples to an output sink, one line per call, in the
// order they are produced.
type Emitter struct {
	output io.Writer
	err    error
}

// NewEmitter returns a new instance of Emitter.
func NewEmitter(output io.Writer) *Emitter {
	return &Emitter{output: output}
}

// Emit writes q immediately. After the first write failure nothing more is
// written and the failure is kept for Err.
func (e *Emitter) Emit(q Quad) {
	if e.err != nil {
		return
	}
	if _, err := io.WriteString(e.output, q.String()+"\n"); err != nil {
		e.err = fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
}

// Err returns the first write failure, if any.
func (e *Emitter) Err() error {
	return e.err
}

// ResolveLabels removes label definitions from a quadruple listing and
// replaces the label operands of JMP and TST with the 1-based number of the
// instruction the label stands before. A label defined after the last
// instruction stands before a HALT appended to the listing.
func ResolveLabels(quad string) string {
	lines := strings.Split(strings.TrimRight(quad, "\n"), "\n")

	labels := map[string]string{}
	instructions := []string{}
	trailing := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		if !strings.Contains(line, ", ") {
			labels[line] = strconv.Itoa(len(instructions) + 1)
			trailing = true
			continue
		}
		instructions = append(instructions, line)
		trailing = false
	}
	if trailing && len(instructions) > 0 {
		instructions = append(instructions, OpHalt.String())
	}

	for i, line := range instructions {
		fields := strings.Split(line, ", ")
		if fields[0] != OpJmp.String() && fields[0] != OpTst.String() {
			continue
		}
		last := len(fields) - 1
		if target, ok := labels[fields[last]]; ok {
			fields[last] = target
			instructions[i] = strings.Join(fields, ", ")
		}
	}

	if len(instructions) == 0 {
		return ""
	}
	return strings.Join(instructions, "\n") + "\n"
}
