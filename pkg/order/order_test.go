package order

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/rmohr/logicmin/pkg/formula"
)

func labels(columns []Column) []string {
	var out []string
	for _, c := range columns {
		out = append(out, c.Label)
	}
	return out
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "should list a lone variable once",
			input: "p",
			want:  []string{"p"},
		},
		{
			name:  "should sort variables by name",
			input: "q&p",
			want:  []string{"p", "q", "q∧p"},
		},
		{
			name:  "should order composites by depth",
			input: "!a->(!(b|c))",
			want:  []string{"a", "b", "c", "¬a", "b∨c", "¬(b∨c)", "¬a→¬(b∨c)"},
		},
		{
			name:  "should keep in-order discovery for equal depth",
			input: "(a&b)|(c->d)",
			want:  []string{"a", "b", "c", "d", "a∧b", "c→d", "a∧b∨(c→d)"},
		},
		{
			name:  "should list repeated sub-formulas once",
			input: "(a&b)~(a&b)",
			want:  []string{"a", "b", "a∧b", "a∧b↔a∧b"},
		},
		{
			name:  "should list nested negations after their operands",
			input: "!!a",
			want:  []string{"a", "¬a", "¬¬a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			tree, err := formula.ParseString(tt.input, formula.LowerOnly)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(labels(Columns(tree))).To(Equal(tt.want))
		})
	}
}

func TestColumnDepths(t *testing.T) {
	g := NewGomegaWithT(t)
	tree, err := formula.ParseString("a&(b|!c)", formula.LowerOnly)
	g.Expect(err).ToNot(HaveOccurred())
	columns := Columns(tree)
	for i := 1; i < len(columns); i++ {
		g.Expect(columns[i].Depth).To(BeNumerically(">=", columns[i-1].Depth))
	}
	last := columns[len(columns)-1]
	g.Expect(last.Node).To(Equal(tree.Root()))
	g.Expect(last.Depth).To(Equal(4))
}
