package tac

import (
	"fmt"
	"io"
	"os"
)

// Translator recognizes a program and emits its three-address code in the
// same pass. Every production returns the name of the operand holding its
// value, or an error when the production does not match.
type Translator struct {
	// Diagnostics receives one line per reported problem.
	Diagnostics io.Writer

	tokens TokenStream
	emit   *Emitter
	names  *Allocator
}

// NewTranslator returns a Translator reading tokens from tokens and writing
// quadruples to output.
func NewTranslator(tokens TokenStream, output io.Writer) *Translator {
	return &Translator{
		Diagnostics: os.Stderr,
		tokens:      tokens,
		emit:        NewEmitter(output),
		names:       NewAllocator(),
	}
}

// Translate translates the program read from src and writes its quadruples
// to output.
func Translate(src io.Reader, output io.Writer) error {
	return NewTranslator(NewCursor(NewScanner(src)), output).Analyze()
}

// Analyze translates the whole program. It returns nil for a valid program
// and a *Error for the first grammar violation. Any other error is fatal.
// Label numbering starts over for the next analysis.
func (t *Translator) Analyze() error {
	defer t.names.ResetLabels()

	err := t.program()
	if err == nil {
		err = t.emit.Err()
	}
	if err != nil && !IsGrammarError(err) {
		t.report("[FATAL] %s", err)
	}
	return err
}

func (t *Translator) report(format string, args ...interface{}) {
	if t.Diagnostics == nil {
		return
	}
	fmt.Fprintf(t.Diagnostics, format+"\n", args...)
}

// fail reports a grammar violation at the current token.
func (t *Translator) fail(found Token, message string, expected ...string) error {
	err := newError(message, found, expected...)
	t.report("[ERROR] %s", err)
	return err
}

// match consumes the next token if it is of type tokType.
func (t *Translator) match(tokType TokenType) (Token, bool, error) {
	token, err := t.tokens.Peek()
	if err != nil {
		return Token{}, false, err
	}
	if token.TokenType != tokType {
		return token, false, nil
	}
	_, err = t.tokens.Pop()
	return token, err == nil, err
}

// expect consumes a token of type tokType or fails with message.
func (t *Translator) expect(tokType TokenType, message string) error {
	token, ok, err := t.match(tokType)
	if err != nil {
		return err
	}
	if !ok {
		return t.fail(token, message, tokType.String())
	}
	return nil
}

// program -> PROGRAM stmt_list END '.'
func (t *Translator) program() error {
	if err := t.expect(PROGRAM, "Expected PROGRAM"); err != nil {
		return err
	}
	if err := t.stmtList(); err != nil {
		return err
	}
	if err := t.expect(END, "Expected END"); err != nil {
		return err
	}
	return t.expect(PERIOD, "Expected Period")
}

// stmt_list -> stmt ';' stmt_list | ε
func (t *Translator) stmtList() error {
	token, err := t.tokens.Peek()
	if err != nil {
		return err
	}
	switch token.TokenType {
	case IDENT, IF, WHILE:
	default:
		return nil
	}

	if err := t.stmt(); err != nil {
		return err
	}

	if _, ok, err := t.match(SEMICOLON); err != nil || !ok {
		return err
	}
	return t.stmtList()
}

// stmt -> ID '=' expr | IF expr compare expr THEN stmt | WHILE expr compare expr DO stmt
func (t *Translator) stmt() error {
	t.names.ResetTemporaries()
	defer t.names.ResetTemporaries()

	token, err := t.tokens.Peek()
	if err != nil {
		return err
	}

	switch token.TokenType {
	case IDENT:
		return t.assignment()
	case IF:
		return t.ifStmt()
	case WHILE:
		return t.whileStmt()
	}
	return t.fail(token, "Expected statement", IDENT.String(), IF.String(), WHILE.String())
}

func (t *Translator) assignment() error {
	ident, err := t.tokens.Pop()
	if err != nil {
		return err
	}
	if err := t.expect(EQUAL, "Expected '='"); err != nil {
		return err
	}

	q, err := t.expr()
	if err != nil {
		return err
	}
	t.emit.Emit(Move(q, ident.Lexeme))
	return nil
}

// condition parses expr compare expr and returns the operands of the test.
func (t *Translator) condition(stmt string) (string, string, Comparator, error) {
	p, err := t.expr()
	if err != nil {
		return "", "", 0, err
	}

	c, ok, err := t.compare()
	if err != nil {
		return "", "", 0, err
	}
	if !ok {
		token, err := t.tokens.Peek()
		if err != nil {
			return "", "", 0, err
		}
		return "", "", 0, t.fail(token, fmt.Sprintf("Error in %s: comparison operator expected", stmt),
			"=", "<", "<=", ">", ">=", "<>")
	}

	q, err := t.expr()
	if err != nil {
		return "", "", 0, err
	}
	return p, q, c, nil
}

func (t *Translator) ifStmt() error {
	if _, err := t.tokens.Pop(); err != nil {
		return err
	}

	p, q, c, err := t.condition("If statement")
	if err != nil {
		return err
	}
	if err := t.expect(THEN, "Error in If statement: Then expected"); err != nil {
		return err
	}

	trueLabel := t.names.NewLabel()
	falseLabel := t.names.NewLabel()
	t.emit.Emit(Test(p, q, c, trueLabel))
	t.emit.Emit(Jump(falseLabel))
	t.emit.Emit(Label(trueLabel))

	if err := t.stmt(); err != nil {
		return err
	}
	t.emit.Emit(Label(falseLabel))
	return nil
}

func (t *Translator) whileStmt() error {
	if _, err := t.tokens.Pop(); err != nil {
		return err
	}

	loopLabel := t.names.NewLabel()
	t.emit.Emit(Label(loopLabel))

	p, q, c, err := t.condition("While loop")
	if err != nil {
		return err
	}
	if err := t.expect(DO, "Error in While loop: Do expected"); err != nil {
		return err
	}

	trueLabel := t.names.NewLabel()
	falseLabel := t.names.NewLabel()
	t.emit.Emit(Test(p, q, c, trueLabel))
	t.emit.Emit(Jump(falseLabel))
	t.emit.Emit(Label(trueLabel))

	if err := t.stmt(); err != nil {
		return err
	}
	t.emit.Emit(Jump(loopLabel))
	t.emit.Emit(Label(falseLabel))
	return nil
}

// compare -> '=' | '<' | '<=' | '>' | '>=' | '<>'
func (t *Translator) compare() (Comparator, bool, error) {
	token, err := t.tokens.Peek()
	if err != nil {
		return 0, false, err
	}
	c, ok := ComparatorFor(token.TokenType)
	if !ok {
		return 0, false, nil
	}
	if _, err := t.tokens.Pop(); err != nil {
		return 0, false, err
	}
	return c, true, nil
}

// expr -> term more_terms
func (t *Translator) expr() (string, error) {
	p, err := t.term()
	if err != nil {
		return "", err
	}
	return t.moreTerms(p)
}

var termOps = map[TokenType]Opcode{
	ADD: OpAdd,
	SUB: OpSub,
}

// more_terms -> '+' term more_terms | '-' term more_terms | ε
func (t *Translator) moreTerms(p string) (string, error) {
	token, err := t.tokens.Peek()
	if err != nil {
		return "", err
	}
	op, ok := termOps[token.TokenType]
	if !ok {
		return p, nil
	}
	if _, err := t.tokens.Pop(); err != nil {
		return "", err
	}

	q, err := t.term()
	if err != nil {
		return "", err
	}
	r := t.names.NewTemporary()
	t.emit.Emit(Binary(op, p, q, r))
	return t.moreTerms(r)
}

// term -> factor more_factors
func (t *Translator) term() (string, error) {
	p, err := t.factor()
	if err != nil {
		return "", err
	}
	return t.moreFactors(p)
}

var factorOps = map[TokenType]Opcode{
	MULT:   OpMul,
	DIV:    OpDvd,
	INTDIV: OpDiv,
	MOD:    OpMod,
}

// more_factors -> ('*' | '/' | DIV | MOD) factor more_factors | ε
func (t *Translator) moreFactors(p string) (string, error) {
	token, err := t.tokens.Peek()
	if err != nil {
		return "", err
	}
	op, ok := factorOps[token.TokenType]
	if !ok {
		return p, nil
	}
	if _, err := t.tokens.Pop(); err != nil {
		return "", err
	}

	q, err := t.factor()
	if err != nil {
		return "", err
	}
	r := t.names.NewTemporary()
	t.emit.Emit(Binary(op, p, q, r))
	return t.moreFactors(r)
}

// factor -> base '^' factor | base
func (t *Translator) factor() (string, error) {
	p, err := t.base()
	if err != nil {
		return "", err
	}

	_, ok, err := t.match(EXPON)
	if err != nil {
		return "", err
	}
	if !ok {
		return p, nil
	}

	q, err := t.factor()
	if err != nil {
		return "", err
	}
	r := t.names.NewTemporary()
	t.emit.Emit(Binary(OpExp, p, q, r))
	return r, nil
}

var unaryOps = map[TokenType]Opcode{
	UPLUS:  OpPls,
	UMINUS: OpNeg,
}

// base -> '#' value | '~' value | value
func (t *Translator) base() (string, error) {
	token, err := t.tokens.Peek()
	if err != nil {
		return "", err
	}
	op, ok := unaryOps[token.TokenType]
	if !ok {
		return t.value()
	}
	if _, err := t.tokens.Pop(); err != nil {
		return "", err
	}

	p, err := t.value()
	if err != nil {
		return "", err
	}
	r := t.names.NewTemporary()
	t.emit.Emit(Unary(op, p, r))
	return r, nil
}

// value -> '(' expr ')' | ID | NUM
func (t *Translator) value() (string, error) {
	token, err := t.tokens.Peek()
	if err != nil {
		return "", err
	}

	switch token.TokenType {
	case OPARENTH:
		if _, err := t.tokens.Pop(); err != nil {
			return "", err
		}
		p, err := t.expr()
		if err != nil {
			return "", err
		}
		if err := t.expect(CPARENTH, "Expected Close Parenthesis"); err != nil {
			return "", err
		}
		return p, nil

	case IDENT, NUMBER:
		if _, err := t.tokens.Pop(); err != nil {
			return "", err
		}
		return token.Lexeme, nil
	}

	return "", t.fail(token, "Expected Open Parenthesis, Identifier, or Constant",
		OPARENTH.String(), IDENT.String(), NUMBER.String())
}
