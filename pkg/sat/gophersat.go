package sat

import (
	"fmt"

	"github.com/crillab/gophersat/bf"

	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/render"
)

// Gophersat searches for an assignment on which the formula and the normal
// form disagree. An unsatisfiable xor proves equivalence.
type Gophersat struct{}

func (g *Gophersat) Name() string {
	return "gophersat"
}

func (g *Gophersat) Equivalent(tree *formula.Tree, nf NormalForm) (*Result, error) {
	source, defs, err := toBF(tree)
	if err != nil {
		return nil, err
	}
	m := bf.Solve(bf.And(append(defs, bf.Xor(source, normalFormToBF(nf)))...))
	if m == nil {
		return result(g.Name(), nf, nil), nil
	}
	return result(g.Name(), nf, model(tree.Variables(), func(name string) bool { return m[name] })), nil
}

// toBF encodes the tree with one auxiliary variable per binary node, so
// that no sub-formula nests deeper than an equivalence over literals.
func toBF(tree *formula.Tree) (bf.Formula, []bf.Formula, error) {
	lits := make([]bf.Formula, tree.Len())
	var defs []bf.Formula
	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(i)
		switch n.Op {
		case formula.OpVar:
			lits[i] = bf.Var(n.Name)
			continue
		case formula.OpNot:
			lits[i] = bf.Not(lits[n.LHS])
			continue
		}
		lhs, rhs := lits[n.LHS], lits[n.RHS]
		var def bf.Formula
		switch n.Op {
		case formula.OpAnd:
			def = bf.And(lhs, rhs)
		case formula.OpOr:
			def = bf.Or(lhs, rhs)
		case formula.OpImplies:
			def = bf.Implies(lhs, rhs)
		case formula.OpEquiv:
			def = bf.Eq(lhs, rhs)
		default:
			return nil, nil, unknownOp(n.Op)
		}
		lits[i] = bf.Var(fmt.Sprintf("#%d", i))
		defs = append(defs, bf.Eq(lits[i], def))
	}
	return lits[tree.Root()], defs, nil
}

func normalFormToBF(nf NormalForm) bf.Formula {
	var clauses []bf.Formula
	for _, lits := range nf.clauses() {
		if len(lits) == 0 {
			if nf.Form == render.CNF {
				clauses = append(clauses, bf.False)
			} else {
				clauses = append(clauses, bf.True)
			}
			continue
		}
		var fs []bf.Formula
		for _, l := range lits {
			v := bf.Var(l.Name)
			if l.Negated {
				v = bf.Not(v)
			}
			fs = append(fs, v)
		}
		if nf.Form == render.CNF {
			clauses = append(clauses, bf.Or(fs...))
		} else {
			clauses = append(clauses, bf.And(fs...))
		}
	}
	if len(clauses) == 0 {
		if nf.Form == render.CNF {
			return bf.True
		}
		return bf.False
	}
	if nf.Form == render.CNF {
		return bf.And(clauses...)
	}
	return bf.Or(clauses...)
}
