package truthtable

import (
	"math/big"
	"strings"

	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/order"
	"github.com/rmohr/logicmin/pkg/qmc"
	"github.com/rmohr/logicmin/pkg/render"
)

// Row is one assignment of the table. Bits follow Table.Variables, most
// significant first; Columns follows Table.Columns.
type Row struct {
	Bits    []bool
	Value   bool
	Columns []bool
}

type Table struct {
	Variables []string
	Columns   []order.Column
	Rows      []Row
	Minterms  []uint
	Maxterms  []uint
}

// Evaluate enumerates all 2^n assignments of the tree's variables in binary
// counting order.
func Evaluate(tree *formula.Tree) (*Table, error) {
	vars := tree.Variables()
	n := len(vars)
	if n >= qmc.MaxVariables {
		return nil, &qmc.DomainError{VarCount: n, Err: qmc.ErrVariableCountMismatch}
	}
	table := &Table{
		Variables: vars,
		Columns:   order.Columns(tree),
	}
	for term := uint(0); term < uint(1)<<uint(n); term++ {
		env := formula.Assignment{}
		bits := make([]bool, n)
		for k, name := range vars {
			bits[k] = (term>>uint(n-1-k))&1 == 1
			env[name] = bits[k]
		}
		value, err := tree.Eval(env)
		if err != nil {
			return nil, err
		}
		cols := make([]bool, len(table.Columns))
		for i, c := range table.Columns {
			if cols[i], err = tree.EvalNode(c.Node, env); err != nil {
				return nil, err
			}
		}
		table.Rows = append(table.Rows, Row{Bits: bits, Value: value, Columns: cols})
		if value {
			table.Minterms = append(table.Minterms, term)
		} else {
			table.Maxterms = append(table.Maxterms, term)
		}
	}
	return table, nil
}

// IndexBits is the result column read top to bottom.
func (t *Table) IndexBits() string {
	var sb strings.Builder
	for _, r := range t.Rows {
		if r.Value {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Index is the result column interpreted as a binary number, first row most
// significant.
func (t *Table) Index() *big.Int {
	idx := new(big.Int)
	for _, r := range t.Rows {
		idx.Lsh(idx, 1)
		if r.Value {
			idx.SetBit(idx, 0, 1)
		}
	}
	return idx
}

// CanonicalDNF is the sum of all minterms.
func (t *Table) CanonicalDNF() string {
	return t.canonical(t.Minterms, render.DNF)
}

// CanonicalCNF is the product of all maxterms.
func (t *Table) CanonicalCNF() string {
	return t.canonical(t.Maxterms, render.CNF)
}

func (t *Table) canonical(terms []uint, form render.Form) string {
	clauses := make([]string, len(terms))
	for i, term := range terms {
		clauses[i] = render.Minterm(term, t.Variables, form)
	}
	return render.Join(clauses, form)
}

// Terms returns the terms the given form is built from.
func (t *Table) Terms(form render.Form) []uint {
	if form == render.CNF {
		return t.Maxterms
	}
	return t.Minterms
}
