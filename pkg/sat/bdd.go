package sat

import (
	"github.com/dalzilio/rudd"
	"github.com/pkg/errors"

	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/render"
)

// BDD compares canonical decision diagrams. Equal functions share the same
// node, so no search is needed.
type BDD struct{}

func (b *BDD) Name() string {
	return "bdd"
}

func (b *BDD) Equivalent(tree *formula.Tree, nf NormalForm) (*Result, error) {
	vars := tree.Variables()
	index := map[string]int{}
	for i, v := range vars {
		index[v] = i
	}
	bdd, err := rudd.New(len(vars))
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate decision diagram")
	}

	nodes := make([]rudd.Node, tree.Len())
	for i := 0; i < tree.Len(); i++ {
		n := tree.Node(i)
		switch n.Op {
		case formula.OpVar:
			nodes[i] = bdd.Ithvar(index[n.Name])
		case formula.OpNot:
			nodes[i] = bdd.Not(nodes[n.LHS])
		case formula.OpAnd:
			nodes[i] = bdd.And(nodes[n.LHS], nodes[n.RHS])
		case formula.OpOr:
			nodes[i] = bdd.Or(nodes[n.LHS], nodes[n.RHS])
		case formula.OpImplies:
			nodes[i] = bdd.Imp(nodes[n.LHS], nodes[n.RHS])
		case formula.OpEquiv:
			nodes[i] = bdd.Equiv(nodes[n.LHS], nodes[n.RHS])
		default:
			return nil, unknownOp(n.Op)
		}
	}

	var clauses []rudd.Node
	for _, ls := range nf.clauses() {
		var ms []rudd.Node
		for _, l := range ls {
			if l.Negated {
				ms = append(ms, bdd.NIthvar(index[l.Name]))
			} else {
				ms = append(ms, bdd.Ithvar(index[l.Name]))
			}
		}
		switch {
		case len(ms) == 0 && nf.Form == render.CNF:
			clauses = append(clauses, bdd.False())
		case len(ms) == 0:
			clauses = append(clauses, bdd.True())
		case nf.Form == render.CNF:
			clauses = append(clauses, bdd.Or(ms...))
		default:
			clauses = append(clauses, bdd.And(ms...))
		}
	}
	var out rudd.Node
	switch {
	case len(clauses) == 0 && nf.Form == render.CNF:
		out = bdd.True()
	case len(clauses) == 0:
		out = bdd.False()
	case nf.Form == render.CNF:
		out = bdd.And(clauses...)
	default:
		out = bdd.Or(clauses...)
	}

	if bdd.Equal(nodes[tree.Root()], out) {
		return result(b.Name(), nf, nil), nil
	}
	// any satisfying assignment of the difference tells the two apart
	diff := bdd.Not(bdd.Equiv(nodes[tree.Root()], out))
	var witness formula.Assignment
	err = bdd.Allsat(func(values []int) error {
		if witness == nil {
			witness = model(vars, func(name string) bool { return values[index[name]] == 1 })
		}
		return nil
	}, diff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate counterexamples")
	}
	if witness == nil {
		witness = formula.Assignment{}
	}
	return result(b.Name(), nf, witness), nil
}
