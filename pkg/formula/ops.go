package formula

// Op identifies the kind of a tree node.
type Op uint8

const (
	OpVar Op = iota
	OpNot
	OpAnd
	OpOr
	OpImplies
	OpEquiv
)

type opInfo struct {
	glyph      string
	precedence int
	rightAssoc bool
	arity      int
}

// operators is consulted by both the parser and the labeler so that
// parenthesization always matches what the parser would read back.
var operators = [...]opInfo{
	OpVar:     {glyph: "", precedence: 5, arity: 0},
	OpNot:     {glyph: "¬", precedence: 4, rightAssoc: true, arity: 1},
	OpAnd:     {glyph: "∧", precedence: 3, arity: 2},
	OpOr:      {glyph: "∨", precedence: 2, arity: 2},
	OpImplies: {glyph: "→", precedence: 1, arity: 2},
	OpEquiv:   {glyph: "↔", precedence: 0, arity: 2},
}

func (o Op) Glyph() string {
	return operators[o].glyph
}

func (o Op) Precedence() int {
	return operators[o].precedence
}

func (o Op) RightAssoc() bool {
	return operators[o].rightAssoc
}

func (o Op) Arity() int {
	return operators[o].arity
}

func (o Op) String() string {
	switch o {
	case OpVar:
		return "var"
	case OpNot:
		return "not"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpImplies:
		return "implies"
	case OpEquiv:
		return "equiv"
	}
	return "unknown"
}
