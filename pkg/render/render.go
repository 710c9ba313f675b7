package render

import (
	"fmt"
	"strings"

	"github.com/rmohr/logicmin/pkg/qmc"
)

// Form selects between sum-of-products and product-of-sums output.
type Form int

const (
	DNF Form = iota
	CNF
)

func (f Form) String() string {
	if f == CNF {
		return "cnf"
	}
	return "dnf"
}

// ParseForm reads the textual name of a form.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(s) {
	case "dnf":
		return DNF, nil
	case "cnf":
		return CNF, nil
	}
	return DNF, fmt.Errorf("unknown normal form %q", s)
}

// Glyph is the connective inside a clause.
func (f Form) Glyph() string {
	if f == CNF {
		return "∨"
	}
	return "∧"
}

// Separator joins clauses.
func (f Form) Separator() string {
	if f == CNF {
		return " ∧ "
	}
	return " ∨ "
}

// Empty is the text of a clause without literals: the constant that is
// neutral for the clause connective.
func (f Form) Empty() string {
	if f == CNF {
		return "0"
	}
	return "1"
}

// Constant is the text of a formula without clauses.
func (f Form) Constant() string {
	if f == CNF {
		return "1"
	}
	return "0"
}

// Literal is one variable occurrence, possibly negated.
type Literal struct {
	Name    string
	Negated bool
}

func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Name
	}
	return l.Name
}

// Literals lists the literals an implicant stands for. In DNF a 1 keeps the
// variable and a 0 negates it; CNF swaps the two. Dashes are skipped.
func Literals(imp qmc.Implicant, names []string, form Form) []Literal {
	var lits []Literal
	for k := 0; k < len(imp) && k < len(names); k++ {
		switch imp[k] {
		case '1':
			lits = append(lits, Literal{Name: names[k], Negated: form == CNF})
		case '0':
			lits = append(lits, Literal{Name: names[k], Negated: form == DNF})
		}
	}
	return lits
}

// Clause renders an implicant without the enclosing parentheses.
func Clause(imp qmc.Implicant, names []string, form Form) string {
	lits := Literals(imp, names, form)
	if len(lits) == 0 {
		return form.Empty()
	}
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, form.Glyph())
}

// Join wraps each clause in parentheses and connects them.
func Join(clauses []string, form Form) string {
	if len(clauses) == 0 {
		return form.Constant()
	}
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		parts[i] = "(" + c + ")"
	}
	return strings.Join(parts, form.Separator())
}

// Expression renders a list of implicants as a complete normal form.
func Expression(imps []qmc.Implicant, names []string, form Form) string {
	clauses := make([]string, len(imps))
	for i, imp := range imps {
		clauses[i] = Clause(imp, names, form)
	}
	return Join(clauses, form)
}

// Minterm renders a fully specified term over names, the clause used by the
// canonical forms.
func Minterm(term uint, names []string, form Form) string {
	return Clause(qmc.FromTerm(term, len(names)), names, form)
}
