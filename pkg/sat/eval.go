package sat

import (
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"

	"github.com/rmohr/logicmin/pkg/formula"
)

var glyphs = strings.NewReplacer(
	" ∧ ", " && ",
	" ∨ ", " || ",
	"¬", "!",
	"∧", " && ",
	"∨", " || ",
	"1", "true",
	"0", "false",
)

// Eval re-reads the rendered normal form with an independent expression
// evaluator and compares it with the tree on every assignment.
type Eval struct{}

func (e *Eval) Name() string {
	return "eval"
}

// Expression translates a rendered normal form into govaluate syntax.
func Expression(text string) string {
	return glyphs.Replace(text)
}

func (e *Eval) Equivalent(tree *formula.Tree, nf NormalForm) (*Result, error) {
	text := nf.String()
	expr, err := govaluate.NewEvaluableExpression(Expression(text))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read back %q", text)
	}
	vars := tree.Variables()
	n := uint(len(vars))
	for term := uint(0); term < 1<<n; term++ {
		env := formula.Assignment{}
		params := map[string]interface{}{}
		for k, v := range vars {
			env[v] = (term>>(n-1-uint(k)))&1 == 1
			params[v] = env[v]
		}
		want, err := tree.Eval(env)
		if err != nil {
			return nil, err
		}
		got, err := expr.Evaluate(params)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to evaluate %q", text)
		}
		value, ok := got.(bool)
		if !ok {
			return nil, errors.Errorf("expression %q evaluated to %v", text, got)
		}
		if value != want {
			return result(e.Name(), nf, env), nil
		}
	}
	return result(e.Name(), nf, nil), nil
}
