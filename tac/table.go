package tac

// The scanner is a finite-state-machine driven by the transitions table.
// The current state and the class of the next character select the next
// state. States are either in progress (inside an identifier, a number or
// a comment, or after a '<' or '>') or accepting. Reaching an accepting
// state emits at most one token and sends the machine back to stateStart.
//
// Accepting states are listed in the accepting table. Their rows in the
// transitions table are never filled, so every entry stays stateStart.

type state uint8

const (
	stateStart state = iota

	// in progress
	stateInIdent
	stateInNumber
	stateInComment
	stateLess
	stateGreater

	// accepting
	stateEndIdent
	stateEndNumber
	stateEndComment
	stateOpenParen
	stateCloseParen
	stateEqual
	stateLessEqual
	stateNotEqual
	stateEndLess
	stateGreaterEqual
	stateEndGreater
	stateOperator
	statePunct

	numStates
)

type transitionTable = [numStates][numClasses]state

// acceptor describes what an accepting state does with the lexeme.
type acceptor struct {
	// retract means the current character is not part of the lexeme and
	// is scanned again from stateStart.
	retract bool
	// skip means nothing is emitted.
	skip bool
	// kind classifies the finished lexeme.
	kind func(lexeme string) TokenType
}

var (
	// transitions stores the state transitions of the scanner.
	transitions = initTransitionTable()
	// accepting maps each accepting state to its acceptor.
	accepting = initAccepting()
)

// operators maps the single characters of classOperator to their token.
var operators = map[string]TokenType{
	"#": UPLUS,
	"~": UMINUS,
	"^": EXPON,
	"+": ADD,
	"-": SUB,
	"*": MULT,
	"/": DIV,
	";": SEMICOLON,
	".": PERIOD,
}

func initTransitionTable() transitionTable {
	transitions := transitionTable{}

	start := &transitions[stateStart]
	start[classLetter] = stateInIdent
	start[classDigit] = stateInNumber
	start[classOpenBrace] = stateInComment
	start[classCloseBrace] = statePunct
	start[classOpenParen] = stateOpenParen
	start[classCloseParen] = stateCloseParen
	start[classEqual] = stateEqual
	start[classLess] = stateLess
	start[classGreater] = stateGreater
	start[classOperator] = stateOperator
	start[classPunct] = statePunct
	start[classSpace] = stateStart

	// identifiers are a letter followed by letters and digits
	fill(&transitions[stateInIdent], stateEndIdent)
	transitions[stateInIdent][classLetter] = stateInIdent
	transitions[stateInIdent][classDigit] = stateInIdent

	fill(&transitions[stateInNumber], stateEndNumber)
	transitions[stateInNumber][classDigit] = stateInNumber

	// anything but '}' stays inside a comment
	fill(&transitions[stateInComment], stateInComment)
	transitions[stateInComment][classCloseBrace] = stateEndComment

	fill(&transitions[stateLess], stateEndLess)
	transitions[stateLess][classEqual] = stateLessEqual
	transitions[stateLess][classGreater] = stateNotEqual

	fill(&transitions[stateGreater], stateEndGreater)
	transitions[stateGreater][classEqual] = stateGreaterEqual

	return transitions
}

func fill(row *[numClasses]state, s state) {
	for i := range row {
		row[i] = s
	}
}

func fixed(tok TokenType) func(string) TokenType {
	return func(string) TokenType { return tok }
}

func operator(lexeme string) TokenType {
	if tok, ok := operators[lexeme]; ok {
		return tok
	}
	return ERROR
}

func initAccepting() map[state]acceptor {
	return map[state]acceptor{
		stateEndIdent:     {retract: true, kind: LookupKeyword},
		stateEndNumber:    {retract: true, kind: fixed(NUMBER)},
		stateEndComment:   {skip: true},
		stateOpenParen:    {kind: fixed(OPARENTH)},
		stateCloseParen:   {kind: fixed(CPARENTH)},
		stateEqual:        {kind: fixed(EQUAL)},
		stateLessEqual:    {kind: fixed(LE)},
		stateNotEqual:     {kind: fixed(NE)},
		stateEndLess:      {retract: true, kind: fixed(LT)},
		stateGreaterEqual: {kind: fixed(GE)},
		stateEndGreater:   {retract: true, kind: fixed(GT)},
		stateOperator:     {kind: operator},
		statePunct:        {kind: fixed(ERROR)},
	}
}
