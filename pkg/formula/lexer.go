package formula

import (
	"strings"
	"unicode"
)

type TokenKind int

const (
	TokVariable TokenKind = iota
	TokNot
	TokAnd
	TokOr
	TokImplies
	TokEquiv
	TokLParen
	TokRParen
)

type Token struct {
	Kind TokenKind
	// Name is set for variables only.
	Name string
	Pos  int
}

// CasePolicy decides whether uppercase letters are accepted as variables.
type CasePolicy int

const (
	LowerOnly CasePolicy = iota
	AnyCase
)

var symbols = map[rune]TokenKind{
	'(': TokLParen,
	')': TokRParen,
	'!': TokNot,
	'¬': TokNot,
	'&': TokAnd,
	'∧': TokAnd,
	'|': TokOr,
	'∨': TokOr,
	'→': TokImplies,
	'~': TokEquiv,
	'↔': TokEquiv,
	'∼': TokEquiv,
}

func stripSpace(text string) []rune {
	return []rune(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text))
}

// Tokenize splits text into tokens. Whitespace carries no meaning and is
// dropped before scanning.
func Tokenize(text string, policy CasePolicy) ([]Token, error) {
	src := stripSpace(text)
	var tokens []Token
	for i := 0; i < len(src); i++ {
		r := src[i]
		if r == '-' && i+1 < len(src) && src[i+1] == '>' {
			tokens = append(tokens, Token{Kind: TokImplies, Pos: i})
			i++
			continue
		}
		if kind, ok := symbols[r]; ok {
			tokens = append(tokens, Token{Kind: kind, Pos: i})
			continue
		}
		if unicode.IsLetter(r) {
			if policy == LowerOnly && unicode.IsUpper(r) {
				return nil, &LexError{Pos: i, Char: r, Err: ErrInvalidVariableCase}
			}
			tokens = append(tokens, Token{Kind: TokVariable, Name: string(r), Pos: i})
			continue
		}
		return nil, &LexError{Pos: i, Char: r, Err: ErrInvalidSymbol}
	}
	if len(tokens) == 0 {
		return nil, &LexError{Err: ErrEmptyExpression}
	}
	return tokens, nil
}

func (k TokenKind) op() Op {
	switch k {
	case TokNot:
		return OpNot
	case TokAnd:
		return OpAnd
	case TokOr:
		return OpOr
	case TokImplies:
		return OpImplies
	case TokEquiv:
		return OpEquiv
	}
	return OpVar
}

func (k TokenKind) isOperator() bool {
	return k >= TokNot && k <= TokEquiv
}
