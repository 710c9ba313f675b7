package formula

// Parse turns a token sequence into a labeled tree. Operators are reordered
// into postfix with the shunting-yard algorithm and the postfix sequence is
// then folded into the arena.
func Parse(tokens []Token) (*Tree, error) {
	rpn, err := toPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return fromPostfix(rpn)
}

// ParseString tokenizes and parses text in one go.
func ParseString(text string, policy CasePolicy) (*Tree, error) {
	tokens, err := Tokenize(text, policy)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func toPostfix(tokens []Token) ([]Token, error) {
	var out, stack []Token
	for i, tok := range tokens {
		switch {
		case tok.Kind == TokVariable:
			out = append(out, tok)
		case tok.Kind == TokNot:
			if !startsOperand(tokens, i+1) {
				return nil, &ParseError{Pos: tok.Pos, Op: OpNot.Glyph(), Err: ErrInsufficientOperands}
			}
			stack = append(stack, tok)
		case tok.Kind == TokLParen:
			stack = append(stack, tok)
		case tok.Kind == TokRParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokLParen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &ParseError{Pos: tok.Pos, Err: ErrMismatchedParen}
			}
			stack = stack[:len(stack)-1]
		default:
			cur := tok.Kind.op()
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.Kind.isOperator() {
					break
				}
				prev := top.Kind.op()
				if prev.Precedence() > cur.Precedence() ||
					(prev.Precedence() == cur.Precedence() && !cur.RightAssoc()) {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == TokLParen {
			return nil, &ParseError{Pos: top.Pos, Err: ErrUnclosedParen}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// startsOperand reports whether the token at i can begin the operand of a
// negation.
func startsOperand(tokens []Token, i int) bool {
	if i >= len(tokens) {
		return false
	}
	switch tokens[i].Kind {
	case TokVariable, TokLParen, TokNot:
		return true
	}
	return false
}

func fromPostfix(rpn []Token) (*Tree, error) {
	b := NewBuilder()
	var stack []int
	for _, tok := range rpn {
		if tok.Kind == TokVariable {
			stack = append(stack, b.Var(tok.Name))
			continue
		}
		op := tok.Kind.op()
		if len(stack) < op.Arity() {
			return nil, &ParseError{Pos: tok.Pos, Op: op.Glyph(), Err: ErrInsufficientOperands}
		}
		if op == OpNot {
			operand := stack[len(stack)-1]
			stack[len(stack)-1] = b.Not(operand)
			continue
		}
		rhs := stack[len(stack)-1]
		lhs := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, b.Binary(op, lhs, rhs))
	}
	if len(stack) != 1 {
		return nil, &ParseError{Pos: -1, Err: ErrMalformedExpression}
	}
	return b.Build(stack[0]), nil
}
