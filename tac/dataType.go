package tac

import "strconv"

// Comparator is the relation tested by a TST quadruple. Its numeric value
// is the code written into the quadruple.
type Comparator int

// Relational comparators
const (
	EqualTo              Comparator = iota // =
	LessThan                               // <
	LessThanOrEqualTo                      // <=
	GreaterThan                            // >
	GreaterThanOrEqualTo                   // >=
	NotEqualTo                             // <>
)

var comparators = map[TokenType]Comparator{
	EQUAL: EqualTo,
	LT:    LessThan,
	LE:    LessThanOrEqualTo,
	GT:    GreaterThan,
	GE:    GreaterThanOrEqualTo,
	NE:    NotEqualTo,
}

// ComparatorFor returns the comparator of a relational token.
func ComparatorFor(tok TokenType) (Comparator, bool) {
	c, ok := comparators[tok]
	return c, ok
}

// String returns the comparator code.
func (c Comparator) String() string {
	return strconv.Itoa(int(c))
}
