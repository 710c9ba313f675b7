package truthtable

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/rmohr/logicmin/pkg/formula"
)

func evaluate(g *WithT, input string) *Table {
	tree, err := formula.ParseString(input, formula.LowerOnly)
	g.Expect(err).ToNot(HaveOccurred())
	table, err := Evaluate(tree)
	g.Expect(err).ToNot(HaveOccurred())
	return table
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		minterms  []uint
		maxterms  []uint
		dnf       string
		cnf       string
		indexBits string
		index     int64
	}{
		{
			name:      "should evaluate a single variable",
			input:     "p",
			minterms:  []uint{1},
			maxterms:  []uint{0},
			dnf:       "(p)",
			cnf:       "(p)",
			indexBits: "01",
			index:     1,
		},
		{
			name:      "should evaluate a conjunction",
			input:     "p & q",
			minterms:  []uint{3},
			maxterms:  []uint{0, 1, 2},
			dnf:       "(p∧q)",
			cnf:       "(p∨q) ∧ (p∨¬q) ∧ (¬p∨q)",
			indexBits: "0001",
			index:     1,
		},
		{
			name:      "should evaluate an implication",
			input:     "p -> q",
			minterms:  []uint{0, 1, 3},
			maxterms:  []uint{2},
			dnf:       "(¬p∧¬q) ∨ (¬p∧q) ∨ (p∧q)",
			cnf:       "(¬p∨q)",
			indexBits: "1101",
			index:     13,
		},
		{
			name:      "should render a contradiction",
			input:     "p & !p",
			minterms:  nil,
			maxterms:  []uint{0, 1},
			dnf:       "0",
			cnf:       "(p) ∧ (¬p)",
			indexBits: "00",
			index:     0,
		},
		{
			name:      "should render a tautology",
			input:     "p | !p",
			minterms:  []uint{0, 1},
			maxterms:  nil,
			dnf:       "(¬p) ∨ (p)",
			cnf:       "1",
			indexBits: "11",
			index:     3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			table := evaluate(g, tt.input)
			g.Expect(table.Minterms).To(Equal(tt.minterms))
			g.Expect(table.Maxterms).To(Equal(tt.maxterms))
			g.Expect(table.CanonicalDNF()).To(Equal(tt.dnf))
			g.Expect(table.CanonicalCNF()).To(Equal(tt.cnf))
			g.Expect(table.IndexBits()).To(Equal(tt.indexBits))
			g.Expect(table.Index().Int64()).To(Equal(tt.index))
		})
	}
}

func TestRows(t *testing.T) {
	g := NewGomegaWithT(t)
	table := evaluate(g, "b | a")
	g.Expect(table.Variables).To(Equal([]string{"a", "b"}))
	g.Expect(table.Rows).To(HaveLen(4))
	g.Expect(table.Rows[2].Bits).To(Equal([]bool{true, false}))
	g.Expect(table.Rows[2].Value).To(BeTrue())
	g.Expect(table.Rows[0].Columns).To(Equal([]bool{false, false, false}))
	g.Expect(table.Rows[1].Columns).To(Equal([]bool{false, true, true}))
}

func TestSubFormulaColumns(t *testing.T) {
	g := NewGomegaWithT(t)
	table := evaluate(g, "!a->(!(b|c))")
	g.Expect(table.Columns).To(HaveLen(7))
	last := len(table.Columns) - 1
	for _, r := range table.Rows {
		g.Expect(r.Columns[last]).To(Equal(r.Value))
		// the ¬a column is the negation of the first variable
		g.Expect(r.Columns[3]).To(Equal(!r.Bits[0]))
	}
}

func TestIndexIsArbitraryPrecision(t *testing.T) {
	g := NewGomegaWithT(t)
	table := evaluate(g, "a|b|c|d|e|f|g")
	g.Expect(table.Rows).To(HaveLen(128))
	g.Expect(table.Index().BitLen()).To(Equal(127))
	g.Expect(table.Index().IsInt64()).To(BeFalse())
}
