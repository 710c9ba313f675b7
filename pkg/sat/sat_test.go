package sat

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/qmc"
	"github.com/rmohr/logicmin/pkg/render"
)

func parse(g *WithT, input string) *formula.Tree {
	tree, err := formula.ParseString(input, formula.LowerOnly)
	g.Expect(err).ToNot(HaveOccurred())
	return tree
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		nf         NormalForm
		equivalent bool
	}{
		{
			name:       "should accept a minimized implication",
			input:      "p->q",
			nf:         NormalForm{Variables: []string{"p", "q"}, Implicants: []qmc.Implicant{"-1", "0-"}, Form: render.DNF},
			equivalent: true,
		},
		{
			name:       "should accept the product of sums of an implication",
			input:      "p->q",
			nf:         NormalForm{Variables: []string{"p", "q"}, Implicants: []qmc.Implicant{"10"}, Form: render.CNF},
			equivalent: true,
		},
		{
			name:       "should accept an equivalence chain",
			input:      "(a~b)~c",
			nf:         NormalForm{Variables: []string{"a", "b", "c"}, Implicants: []qmc.Implicant{"001", "010", "100", "111"}, Form: render.DNF},
			equivalent: true,
		},
		{
			name:       "should accept a tautology as true",
			input:      "p|!p",
			nf:         NormalForm{Variables: []string{"p"}, Implicants: []qmc.Implicant{"-"}, Form: render.DNF},
			equivalent: true,
		},
		{
			name:       "should accept a tautology as an empty product of sums",
			input:      "p|!p",
			nf:         NormalForm{Variables: []string{"p"}, Form: render.CNF},
			equivalent: true,
		},
		{
			name:       "should accept a contradiction as an empty sum of products",
			input:      "p&!p",
			nf:         NormalForm{Variables: []string{"p"}, Form: render.DNF},
			equivalent: true,
		},
		{
			name:       "should reject a dropped clause",
			input:      "p|q",
			nf:         NormalForm{Variables: []string{"p", "q"}, Implicants: []qmc.Implicant{"1-"}, Form: render.DNF},
			equivalent: false,
		},
		{
			name:       "should reject a flipped literal",
			input:      "(p->q)&(q->r)",
			nf:         NormalForm{Variables: []string{"p", "q", "r"}, Implicants: []qmc.Implicant{"1-0", "-11"}, Form: render.CNF},
			equivalent: false,
		},
	}
	for _, tt := range tests {
		for _, name := range Backends() {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				g := NewGomegaWithT(t)
				tree := parse(g, tt.input)
				checker, err := New(name)
				g.Expect(err).ToNot(HaveOccurred())
				res, err := checker.Equivalent(tree, tt.nf)
				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(res.Backend).To(Equal(name))
				g.Expect(res.Equivalent).To(Equal(tt.equivalent))
				if tt.equivalent {
					g.Expect(res.Counterexample).To(BeNil())
					return
				}
				// the counterexample must really tell the two apart
				want, err := tree.Eval(res.Counterexample)
				g.Expect(err).ToNot(HaveOccurred())
				g.Expect(evalNormalForm(tt.nf, res.Counterexample)).ToNot(Equal(want))
			})
		}
	}
}

func evalNormalForm(nf NormalForm, a formula.Assignment) bool {
	for _, imp := range nf.Implicants {
		var term uint
		for _, v := range nf.Variables {
			term <<= 1
			if a[v] {
				term |= 1
			}
		}
		if imp.Covers(term) {
			// a covered term is a one of a product and a zero of a sum
			return nf.Form == render.DNF
		}
	}
	return nf.Form == render.CNF
}

func TestVerify(t *testing.T) {
	g := NewGomegaWithT(t)
	tree := parse(g, "p&q")
	dnf := NormalForm{Variables: []string{"p", "q"}, Implicants: []qmc.Implicant{"11"}, Form: render.DNF}
	cnf := NormalForm{Variables: []string{"p", "q"}, Implicants: []qmc.Implicant{"0-", "-0"}, Form: render.CNF}
	results, err := Verify(tree, Backends(), dnf, cnf)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(results).To(HaveLen(2 * len(Backends())))
	for _, res := range results {
		g.Expect(res.Equivalent).To(BeTrue(), "%s on %s", res.Backend, res.Form)
	}
}

func TestUnknownBackend(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := New("z3")
	g.Expect(errors.Is(err, ErrUnknownBackend)).To(BeTrue())
	g.Expect(Backends()).To(Equal([]string{"bdd", "eval", "gini", "gophersat"}))
}

func TestExpression(t *testing.T) {
	g := NewGomegaWithT(t)
	g.Expect(Expression("(¬a∧b) ∨ (c)")).To(Equal("(!a && b) || (c)"))
	g.Expect(Expression("0")).To(Equal("false"))
}
