package tac

import "strings"

// Opcode is the operation of a quadruple.
type Opcode int

// Quadruple operations
const (
	// OpLabel is not an instruction; it defines a label on its own line.
	OpLabel Opcode = iota

	OpMov // MOV, src, dst

	// Binary operations: OP, left, right, result
	OpAdd
	OpSub
	OpMul
	OpDvd // real division
	OpDiv // integer division
	OpMod
	OpExp

	// Unary operations: OP, operand, result
	OpPls
	OpNeg

	OpTst // TST, left, right, comparator, label
	OpJmp // JMP, label

	OpHalt // HALT
)

var opcodes = [...]string{
	OpLabel: "LBL",
	OpMov:   "MOV",
	OpAdd:   "ADD",
	OpSub:   "SUB",
	OpMul:   "MUL",
	OpDvd:   "DVD",
	OpDiv:   "DIV",
	OpMod:   "MOD",
	OpExp:   "EXP",
	OpPls:   "PLS",
	OpNeg:   "NEG",
	OpTst:   "TST",
	OpJmp:   "JMP",
	OpHalt:  "HALT",
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	if op >= 0 && op < Opcode(len(opcodes)) {
		return opcodes[op]
	}
	return ""
}

// Quad is a single three-address instruction or a label definition.
type Quad struct {
	Op   Opcode
	Args []string
}

// String renders the quadruple as one output line without the newline.
func (q Quad) String() string {
	if q.Op == OpLabel {
		return strings.Join(q.Args, "")
	}
	return strings.Join(append([]string{q.Op.String()}, q.Args...), ", ")
}

// Binary returns the quadruple for a binary operation.
func Binary(op Opcode, left, right, result string) Quad {
	return Quad{Op: op, Args: []string{left, right, result}}
}

// Unary returns the quadruple for a unary operation.
func Unary(op Opcode, operand, result string) Quad {
	return Quad{Op: op, Args: []string{operand, result}}
}

// Move returns the quadruple assigning src to dst.
func Move(src, dst string) Quad {
	return Quad{Op: OpMov, Args: []string{src, dst}}
}

// Test returns the conditional jump to label taken when left c right holds.
func Test(left, right string, c Comparator, label string) Quad {
	return Quad{Op: OpTst, Args: []string{left, right, c.String(), label}}
}

// Jump returns an unconditional jump to label.
func Jump(label string) Quad {
	return Quad{Op: OpJmp, Args: []string{label}}
}

// Label returns the definition of label.
func Label(label string) Quad {
	return Quad{Op: OpLabel, Args: []string{label}}
}
