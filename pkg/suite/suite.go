package suite

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/rmohr/logicmin/pkg/api"
	"github.com/rmohr/logicmin/pkg/api/logicmin"
	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/formula"
)

type SuiteInit struct {
	Name      string
	SuiteFile string
}

func NewSuiteInit(name string, suiteFile string) *SuiteInit {
	return &SuiteInit{Name: name, SuiteFile: suiteFile}
}

// Init writes a starter suite and refuses to overwrite an existing file.
func (s *SuiteInit) Init() error {
	_, err := os.Stat(s.SuiteFile)
	if !os.IsNotExist(err) {
		return fmt.Errorf("suite file %s already exists", s.SuiteFile)
	}
	suite := &logicmin.Suite{
		Name: s.Name,
		Cases: []logicmin.Case{
			{Name: "variable", Formula: "p", Minterms: []uint{1}, DNF: "(p)", CNF: "(p)"},
			{Name: "conjunction", Formula: "p & q", Minterms: []uint{3}, DNF: "(p∧q)", CNF: "(q) ∧ (p)"},
			{Name: "implication", Formula: "p -> q", Minterms: []uint{0, 1, 3}, DNF: "(q) ∨ (¬p)", CNF: "(¬p∨q)"},
			{Name: "negated disjunction", Formula: "!a->(!(b|c))", Minterms: []uint{0, 4, 5, 6, 7}, DNF: "(¬b∧¬c) ∨ (a)", CNF: "(a∨¬c) ∧ (a∨¬b)"},
			{Name: "invalid symbol", Formula: "a & 1", Error: "invalid symbol"},
		},
	}
	data, err := yaml.Marshal(suite)
	if err != nil {
		return err
	}
	return os.WriteFile(s.SuiteFile, data, 0660)
}

func LoadSuiteFile(file string) (*logicmin.Suite, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	suite := &logicmin.Suite{}
	err = yaml.Unmarshal(data, suite)
	if err != nil {
		return nil, err
	}
	return suite, nil
}

// Outcome is the result of one case.
type Outcome struct {
	Case        logicmin.Case
	Compilation *api.Compilation
	Failures    []string
}

func (o *Outcome) Passed() bool {
	return len(o.Failures) == 0
}

// Run compiles every case of the suite and compares the results with the
// expectations. The suite's own case policy overrides the one in opts.
func Run(suite *logicmin.Suite, opts compiler.Options) []Outcome {
	if suite.AllowUppercase {
		opts.Case = formula.AnyCase
	}
	var outcomes []Outcome
	for _, c := range suite.Cases {
		outcomes = append(outcomes, check(c, opts))
	}
	return outcomes
}

func check(c logicmin.Case, opts compiler.Options) Outcome {
	out := Outcome{Case: c}
	failf := func(format string, args ...interface{}) {
		out.Failures = append(out.Failures, fmt.Sprintf(format, args...))
	}
	comp, err := compiler.Compile(c.Formula, opts)
	if c.Error != "" {
		switch {
		case err == nil:
			failf("expected an error containing %q", c.Error)
		case !strings.Contains(err.Error(), c.Error):
			failf("expected an error containing %q, got %v", c.Error, err)
		}
		return out
	}
	if err != nil {
		failf("%v", err)
		return out
	}
	out.Compilation = comp
	if c.Minterms != nil && !slices.Equal(c.Minterms, comp.Minterms) {
		failf("minterms: expected %v, got %v", c.Minterms, comp.Minterms)
	}
	if c.DNF != "" && c.DNF != comp.DNF.Expression {
		failf("dnf: expected %s, got %s", c.DNF, comp.DNF.Expression)
	}
	if c.CNF != "" && c.CNF != comp.CNF.Expression {
		failf("cnf: expected %s, got %s", c.CNF, comp.CNF.Expression)
	}
	return out
}
