package compiler

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rmohr/logicmin/pkg/api"
	"github.com/rmohr/logicmin/pkg/cover"
	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/kmap"
	"github.com/rmohr/logicmin/pkg/qmc"
	"github.com/rmohr/logicmin/pkg/render"
	"github.com/rmohr/logicmin/pkg/sat"
	"github.com/rmohr/logicmin/pkg/truthtable"
)

const DefaultMaxVariables = 10

var (
	ErrTooManyVariables = errors.New("too many variables")
	ErrLostCoverage     = errors.New("selection does not cover every term")
	ErrMethodsDisagree  = errors.New("karnaugh map disagrees with the tabular result")
	ErrNotEquivalent    = errors.New("minimized form is not equivalent to the formula")
)

type Options struct {
	Case formula.CasePolicy
	// MaxVariables bounds the 2^n enumeration; zero means DefaultMaxVariables.
	MaxVariables int
	// Backends are the equivalence checkers run on both minimized forms.
	Backends []string
}

func (o Options) maxVariables() int {
	if o.MaxVariables <= 0 {
		return DefaultMaxVariables
	}
	return o.MaxVariables
}

// Compile runs the whole pipeline on one formula. Any failure aborts the
// compilation; there are no partial results. The one exception is
// ErrNotEquivalent, which comes with the finished compilation so that the
// counterexamples in its checks can be shown.
func Compile(text string, opts Options) (*api.Compilation, error) {
	tree, err := formula.ParseString(text, opts.Case)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q", text)
	}
	vars := tree.Variables()
	log := logrus.WithFields(logrus.Fields{"formula": tree.String(), "variables": len(vars)})
	log.Debug("Parsed formula.")
	if len(vars) > opts.maxVariables() {
		return nil, errors.Wrapf(ErrTooManyVariables, "%d variables, at most %d are allowed", len(vars), opts.maxVariables())
	}

	table, err := truthtable.Evaluate(tree)
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate the truth table")
	}
	log.WithFields(logrus.Fields{"minterms": len(table.Minterms), "maxterms": len(table.Maxterms)}).Debug("Evaluated truth table.")

	c := &api.Compilation{
		Formula:      tree.String(),
		Variables:    vars,
		Minterms:     table.Minterms,
		Maxterms:     table.Maxterms,
		IndexValue:   table.Index().String(),
		IndexBits:    table.IndexBits(),
		CanonicalDNF: table.CanonicalDNF(),
		CanonicalCNF: table.CanonicalCNF(),
	}
	for _, col := range table.Columns {
		c.Columns = append(c.Columns, col.Label)
	}
	for _, r := range table.Rows {
		c.Rows = append(c.Rows, api.TruthRow{Bits: r.Bits, Value: r.Value, Columns: r.Columns})
	}

	forms := map[render.Form]*api.Minimization{render.DNF: &c.DNF, render.CNF: &c.CNF}
	var normalForms []sat.NormalForm
	for _, form := range []render.Form{render.DNF, render.CNF} {
		m, nf, err := minimize(table.Terms(form), vars, form)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to minimize the %s", form)
		}
		*forms[form] = *m
		normalForms = append(normalForms, nf)
		log.WithFields(logrus.Fields{"form": form, "primes": len(m.Primes), "clauses": len(m.Clauses)}).Debug("Minimized.")
	}

	if len(opts.Backends) == 0 {
		return c, nil
	}
	results, err := sat.Verify(tree, opts.Backends, normalForms...)
	if err != nil {
		return nil, err
	}
	c.Checks, err = checks(results)
	if err != nil {
		return c, err
	}
	return c, nil
}

// checks converts the backend verdicts. Every verdict is kept even when one
// of them reports a difference.
func checks(results []sat.Result) ([]api.Check, error) {
	var out []api.Check
	var failed error
	for _, res := range results {
		out = append(out, api.Check{
			Backend:        res.Backend,
			Form:           res.Form,
			Equivalent:     res.Equivalent,
			Counterexample: res.Counterexample,
		})
		if !res.Equivalent && failed == nil {
			failed = errors.Wrapf(ErrNotEquivalent, "%s differs on %v according to %s", res.Form, res.Counterexample, res.Backend)
		}
	}
	return out, failed
}

// MinimizeTerms reduces a raw term list over the given variables. Only
// opts.MaxVariables is consulted.
func MinimizeTerms(terms []uint, names []string, form render.Form, opts Options) (*api.Minimization, error) {
	if len(names) > opts.maxVariables() {
		return nil, errors.Wrapf(ErrTooManyVariables, "%d variables, at most %d are allowed", len(names), opts.maxVariables())
	}
	if len(names) == 0 {
		return nil, errors.Wrap(qmc.ErrVariableCountMismatch, "no variables given")
	}
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			return nil, errors.Wrapf(qmc.ErrVariableCountMismatch, "variable %q is listed twice", name)
		}
		seen[name] = true
	}
	m, _, err := minimize(terms, names, form)
	return m, err
}

func minimize(terms []uint, names []string, form render.Form) (*api.Minimization, sat.NormalForm, error) {
	terms = slices.Clone(terms)
	slices.Sort(terms)
	terms = slices.Compact(terms)
	nf := sat.NormalForm{Variables: names, Form: form}
	m := &api.Minimization{Form: form.String(), Terms: terms}
	if len(terms) == 0 {
		m.Expression = form.Constant()
		m.Karnaugh = karnaugh(kmap.Minimize(nil, len(names), names, form), names, form)
		return m, nf, nil
	}

	red, err := qmc.Reduce(terms, len(names))
	if err != nil {
		return nil, nf, err
	}
	for _, s := range red.Stages {
		stage := api.Stage{Round: s.Round}
		for _, group := range s.Groups {
			stage.Groups = append(stage.Groups, strs(group))
		}
		m.Stages = append(m.Stages, stage)
	}
	m.Primes = strs(red.Primes)

	table := cover.NewTable(red.Primes, terms)
	m.Coverage = api.Coverage{Implicants: strs(table.Implicants), Terms: table.Terms, Marks: table.Marks}
	m.Essential = strs(table.Essential())

	selected := cover.SelectCovering(red.Primes, terms)
	if err := assertCovered("selection", selected, terms); err != nil {
		return nil, nf, err
	}
	selected = cover.Prune(selected, terms)
	if err := assertCovered("pruning", selected, terms); err != nil {
		return nil, nf, err
	}
	selected = cover.Subsume(selected, names, form)
	if err := assertCovered("subsumption", selected, terms); err != nil {
		return nil, nf, err
	}

	nf.Implicants = selected
	m.Implicants = strs(selected)
	for _, imp := range selected {
		m.Clauses = append(m.Clauses, render.Clause(imp, names, form))
	}
	m.Expression = render.Join(m.Clauses, form)

	km := kmap.Minimize(terms, len(names), names, form)
	m.Karnaugh = karnaugh(km, names, form)
	if !slices.Equal(km.Selected, selected) {
		return nil, nf, errors.Wrapf(ErrMethodsDisagree, "map selected %v, table selected %v", km.Selected, selected)
	}
	return m, nf, nil
}

func assertCovered(stage string, selected []qmc.Implicant, terms []uint) error {
	if cover.Covered(selected, terms) {
		return nil
	}
	return errors.Wrapf(ErrLostCoverage, "after %s", stage)
}

func karnaugh(res *kmap.Result, names []string, form render.Form) api.Karnaugh {
	m := res.Map
	k := api.Karnaugh{
		RowVariables: names[:m.RowBits],
		ColVariables: names[m.RowBits:],
		RowLabels:    m.RowLabels(),
		ColLabels:    m.ColLabels(),
		Cells:        m.Cells,
		Implicants:   strs(res.Selected),
		Expression:   res.Expression(form),
	}
	for _, g := range res.Groups {
		k.Groups = append(k.Groups, string(g.Implicant))
	}
	return k
}

func strs[T ~string](in []T) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
