package formula

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSymbol       = errors.New("invalid symbol")
	ErrEmptyExpression     = errors.New("empty expression")
	ErrInvalidVariableCase = errors.New("variable names must be lowercase")

	ErrMismatchedParen      = errors.New("unmatched closing parenthesis")
	ErrUnclosedParen        = errors.New("unclosed parenthesis")
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrMalformedExpression  = errors.New("malformed expression")

	ErrUnboundVariable = errors.New("unbound variable")
)

// LexError reports a rejected character. Pos counts runes of the input with
// whitespace removed.
type LexError struct {
	Pos  int
	Char rune
	Err  error
}

func (e *LexError) Error() string {
	if e.Err == ErrEmptyExpression {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v at position %d: %q", e.Err, e.Pos, e.Char)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

type ParseError struct {
	Pos int
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%v for %s at position %d", e.Err, e.Op, e.Pos)
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type EvalError struct {
	Name string
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%v %q", e.Err, e.Name)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
