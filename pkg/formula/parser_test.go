package formula

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		prefix string
		label  string
	}{
		{name: "should parse a single variable", input: "p", prefix: "p", label: "p"},
		{name: "should bind and tighter than or", input: "a|b&c", prefix: "or(a, and(b, c))", label: "a∨b∧c"},
		{name: "should associate binary operators to the left", input: "a->b->c", prefix: "implies(implies(a, b), c)", label: "a→b→c"},
		{name: "should keep explicit right grouping", input: "a->(b->c)", prefix: "implies(a, implies(b, c))", label: "a→(b→c)"},
		{name: "should bind negation tightest", input: "!a&b", prefix: "and(not(a), b)", label: "¬a∧b"},
		{name: "should stack negations", input: "!!a", prefix: "not(not(a))", label: "¬¬a"},
		{name: "should parenthesize negated compounds", input: "!(a|b)", prefix: "not(or(a, b))", label: "¬(a∨b)"},
		{name: "should put equivalence lowest", input: "a->b~c", prefix: "equiv(implies(a, b), c)", label: "a→b↔c"},
		{name: "should drop redundant parentheses", input: "((a&b))|c", prefix: "or(and(a, b), c)", label: "a∧b∨c"},
		{name: "should keep needed parentheses", input: "(a|b)&c", prefix: "and(or(a, b), c)", label: "(a∨b)∧c"},
		{name: "should parse nested negations", input: "!a->(!(b|c))", prefix: "implies(not(a), not(or(b, c)))", label: "¬a→¬(b∨c)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			tree, err := ParseString(tt.input, LowerOnly)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(tree.Prefix()).To(Equal(tt.prefix))
			g.Expect(tree.String()).To(Equal(tt.label))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "should reject an unmatched closing parenthesis", input: "a)", wantErr: ErrMismatchedParen},
		{name: "should reject an unclosed parenthesis", input: "(a&b", wantErr: ErrUnclosedParen},
		{name: "should reject a dangling binary operator", input: "a&", wantErr: ErrInsufficientOperands},
		{name: "should reject a dangling negation", input: "!", wantErr: ErrInsufficientOperands},
		{name: "should reject a trailing negation", input: "p!", wantErr: ErrInsufficientOperands},
		{name: "should reject a negation after the last operand", input: "p&q!", wantErr: ErrInsufficientOperands},
		{name: "should reject a negation before a closing parenthesis", input: "(p!)", wantErr: ErrInsufficientOperands},
		{name: "should reject a negation before a binary operator", input: "!&p", wantErr: ErrInsufficientOperands},
		{name: "should reject juxtaposed variables", input: "ab", wantErr: ErrMalformedExpression},
		{name: "should reject empty parentheses", input: "()", wantErr: ErrMalformedExpression},
		{name: "should reject an empty input", input: "", wantErr: ErrEmptyExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			tree, err := ParseString(tt.input, LowerOnly)
			g.Expect(tree).To(BeNil())
			g.Expect(errors.Is(err, tt.wantErr)).To(BeTrue(), "got %v", err)
		})
	}
}

func TestLabelsReparse(t *testing.T) {
	inputs := []string{"a->(b->c)", "a&(b&c)", "(a~b)~c", "a~(b~c)", "!(a->b)|!!c", "(a|b)&(c->d)"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			g := NewGomegaWithT(t)
			tree, err := ParseString(input, LowerOnly)
			g.Expect(err).ToNot(HaveOccurred())
			again, err := ParseString(tree.String(), LowerOnly)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(again.Prefix()).To(Equal(tree.Prefix()))
		})
	}
}
