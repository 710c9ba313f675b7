package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/render"
)

// Gini builds both sides into one circuit and asks the solver whether the
// xor of the two outputs can be true.
type Gini struct{}

func (g *Gini) Name() string {
	return "gini"
}

func (g *Gini) Equivalent(tree *formula.Tree, nf NormalForm) (*Result, error) {
	c := logic.NewC()
	inputs := map[string]z.Lit{}
	input := func(name string) z.Lit {
		if m, ok := inputs[name]; ok {
			return m
		}
		m := c.Lit()
		inputs[name] = m
		return m
	}
	for _, v := range tree.Variables() {
		input(v)
	}

	lits := make([]z.Lit, tree.Len())
	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(i)
		switch n.Op {
		case formula.OpVar:
			lits[i] = input(n.Name)
		case formula.OpNot:
			lits[i] = lits[n.LHS].Not()
		case formula.OpAnd:
			lits[i] = c.And(lits[n.LHS], lits[n.RHS])
		case formula.OpOr:
			lits[i] = c.Or(lits[n.LHS], lits[n.RHS])
		case formula.OpImplies:
			lits[i] = c.Implies(lits[n.LHS], lits[n.RHS])
		case formula.OpEquiv:
			lits[i] = c.Xor(lits[n.LHS], lits[n.RHS]).Not()
		default:
			return nil, unknownOp(n.Op)
		}
	}

	var clauses []z.Lit
	for _, ls := range nf.clauses() {
		var ms []z.Lit
		for _, l := range ls {
			m := input(l.Name)
			if l.Negated {
				m = m.Not()
			}
			ms = append(ms, m)
		}
		if nf.Form == render.CNF {
			clauses = append(clauses, c.Ors(ms...))
		} else {
			clauses = append(clauses, c.Ands(ms...))
		}
	}
	var out z.Lit
	if nf.Form == render.CNF {
		out = c.Ands(clauses...)
	} else {
		out = c.Ors(clauses...)
	}

	miter := c.Xor(lits[tree.Root()], out)
	s := gini.New()
	c.ToCnf(s)
	s.Assume(miter)
	if s.Solve() != 1 {
		return result(g.Name(), nf, nil), nil
	}
	return result(g.Name(), nf, model(tree.Variables(), func(name string) bool { return s.Value(inputs[name]) })), nil
}
