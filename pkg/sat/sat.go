package sat

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/qmc"
	"github.com/rmohr/logicmin/pkg/render"
)

var ErrUnknownBackend = errors.New("unknown backend")

// NormalForm is a minimized expression given by its implicants.
type NormalForm struct {
	Variables  []string
	Implicants []qmc.Implicant
	Form       render.Form
}

func (nf NormalForm) String() string {
	return render.Expression(nf.Implicants, nf.Variables, nf.Form)
}

// clauses returns the literal lists of the normal form, one per implicant.
func (nf NormalForm) clauses() [][]render.Literal {
	out := make([][]render.Literal, len(nf.Implicants))
	for i, imp := range nf.Implicants {
		out[i] = render.Literals(imp, nf.Variables, nf.Form)
	}
	return out
}

// Result is the verdict of one backend.
type Result struct {
	Backend    string `json:"backend"`
	Form       string `json:"form"`
	Equivalent bool   `json:"equivalent"`
	// Counterexample is set when the forms differ.
	Counterexample formula.Assignment `json:"counterexample,omitempty"`
}

// Checker decides whether a normal form computes the same function as the
// formula it was derived from.
type Checker interface {
	Name() string
	Equivalent(tree *formula.Tree, nf NormalForm) (*Result, error)
}

var backends = map[string]func() Checker{
	"gophersat": func() Checker { return &Gophersat{} },
	"gini":      func() Checker { return &Gini{} },
	"bdd":       func() Checker { return &BDD{} },
	"eval":      func() Checker { return &Eval{} },
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	var names []string
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func New(name string) (Checker, error) {
	constructor, exists := backends[name]
	if !exists {
		return nil, errors.Wrapf(ErrUnknownBackend, "%q (known: %v)", name, Backends())
	}
	return constructor(), nil
}

// Verify runs every named backend against every normal form.
func Verify(tree *formula.Tree, names []string, forms ...NormalForm) ([]Result, error) {
	var results []Result
	for _, name := range names {
		checker, err := New(name)
		if err != nil {
			return nil, err
		}
		for _, nf := range forms {
			res, err := checker.Equivalent(tree, nf)
			if err != nil {
				return nil, errors.Wrapf(err, "backend %s failed on %s", name, nf.Form)
			}
			logrus.WithFields(logrus.Fields{"backend": name, "form": nf.Form, "equivalent": res.Equivalent}).Debug("Checked normal form.")
			results = append(results, *res)
		}
	}
	return results, nil
}

func result(backend string, nf NormalForm, counterexample formula.Assignment) *Result {
	return &Result{
		Backend:        backend,
		Form:           nf.Form.String(),
		Equivalent:     counterexample == nil,
		Counterexample: counterexample,
	}
}

// model restricts a solver model to the formula's variables. Variables the
// solver did not report are false.
func model(vars []string, value func(name string) bool) formula.Assignment {
	a := formula.Assignment{}
	for _, v := range vars {
		a[v] = value(v)
	}
	return a
}

func unknownOp(op formula.Op) error {
	return fmt.Errorf("unsupported operator %s", op)
}
