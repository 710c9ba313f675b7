package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"

	"github.com/rmohr/logicmin/pkg/api"
	"github.com/rmohr/logicmin/pkg/api/logicmin"
	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/formula"
	"github.com/rmohr/logicmin/pkg/report"
)

func TestToOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      logicmin.Config
		root     rootOpts
		backends []string
		expected compiler.Options
	}{
		{
			name:     "empty",
			expected: compiler.Options{},
		},
		{
			name:     "config only",
			cfg:      logicmin.Config{AllowUppercase: true, MaxVariables: 4, Backends: []string{"bdd"}},
			expected: compiler.Options{Case: formula.AnyCase, MaxVariables: 4, Backends: []string{"bdd"}},
		},
		{
			name:     "flags win",
			cfg:      logicmin.Config{MaxVariables: 4, Backends: []string{"bdd"}},
			root:     rootOpts{allowUppercase: true, maxVariables: 6},
			backends: []string{"gini", "eval"},
			expected: compiler.Options{Case: formula.AnyCase, MaxVariables: 6, Backends: []string{"gini", "eval"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			g.Expect(cmp.Diff(tt.expected, toOptions(&tt.cfg, tt.root, tt.backends))).To(BeEmpty())
		})
	}
}

func TestOutputFormat(t *testing.T) {
	g := NewGomegaWithT(t)
	g.Expect(outputFormat(&logicmin.Config{}, "")).To(Equal(report.FormatText))
	g.Expect(outputFormat(&logicmin.Config{Output: "yaml"}, "")).To(Equal("yaml"))
	g.Expect(outputFormat(&logicmin.Config{Output: "yaml"}, "json")).To(Equal("json"))
}

func writeConfig(g *WithT, dir string, content string) string {
	file := filepath.Join(dir, "config.yaml")
	g.Expect(os.WriteFile(file, []byte(content), 0660)).To(Succeed())
	return file
}

func TestLoadConfig(t *testing.T) {
	g := NewGomegaWithT(t)
	file := writeConfig(g, t.TempDir(), "allowUppercase: true\nmaxVariables: 5\nbackends: [gini, bdd]\noutput: yaml\n")
	cfg, err := loadConfig(file)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cmp.Diff(&logicmin.Config{AllowUppercase: true, MaxVariables: 5, Backends: []string{"gini", "bdd"}, Output: "yaml"}, cfg)).To(BeEmpty())

	_, err = loadConfig(writeConfig(g, t.TempDir(), "colour: red\n"))
	g.Expect(err).To(HaveOccurred())

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).To(HaveOccurred())
}

func run(args ...string) (string, error) {
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(NewGomegaWithT(t), dir, "output: json\n")
	suiteFile := filepath.Join(dir, "suite.yaml")

	tests := []struct {
		name     string
		args     []string
		contains []string
		fails    bool
	}{
		{
			name:     "compile with the configured output",
			args:     []string{"compile", "p&q", "--config", config},
			contains: []string{`"expression": "(p∧q)"`},
		},
		{
			name:     "compile text with a backend",
			args:     []string{"compile", "p", "&", "q", "-o", "text", "-b", "eval", "--config", config},
			contains: []string{"Minimal DNF:   (p∧q)", "Minimal CNF:   (q) ∧ (p)", "eval"},
		},
		{
			name:  "compile rejects uppercase",
			args:  []string{"compile", "P", "--config", config},
			fails: true,
		},
		{
			name:     "compile accepts uppercase when asked",
			args:     []string{"compile", "P", "-u", "-o", "text", "--config", config},
			contains: []string{"Minimal DNF:   (P)"},
		},
		{
			name:  "compile rejects too many variables",
			args:  []string{"compile", "a&b&c", "--max-variables", "2", "--config", config},
			fails: true,
		},
		{
			name:  "compile rejects unknown backends",
			args:  []string{"compile", "p", "-b", "z3", "--config", config},
			fails: true,
		},
		{
			name:     "table",
			args:     []string{"table", "p -> q", "--config", config},
			contains: []string{"Minterms: [0 1 3]", "Index:    13 (1101)"},
		},
		{
			name:     "minimize minterms",
			args:     []string{"minimize", "--vars", "p,q", "--terms", "1,3", "-o", "text", "--config", config},
			contains: []string{"DNF calculation method: (q)"},
		},
		{
			name:     "minimize maxterms",
			args:     []string{"minimize", "--vars", "p,q", "--terms", "0,1", "--cnf", "-o", "text", "--config", config},
			contains: []string{"CNF calculation method: (p)"},
		},
		{
			name:  "minimize out of range",
			args:  []string{"minimize", "--vars", "p,q", "--terms", "4", "--config", config},
			fails: true,
		},
		{
			name:  "minimize rejects too many variables",
			args:  []string{"minimize", "--vars", "a,b,c,d,e,f,g,h,i,j,k,l,m,n,o,p", "--terms", "1", "--config", config},
			fails: true,
		},
		{
			name:  "minimize honors the variable limit",
			args:  []string{"minimize", "--vars", "p,q,r", "--terms", "1", "--max-variables", "2", "--config", config},
			fails: true,
		},
		{
			name:  "minimize rejects duplicate variables",
			args:  []string{"minimize", "--vars", "p,p", "--terms", "1", "--config", config},
			fails: true,
		},
		{
			name:     "kmap",
			args:     []string{"kmap", "p&q", "--config", config},
			contains: []string{"DNF Karnaugh map:", "Expression: (p∧q)", "Expression: (q) ∧ (p)"},
		},
		{
			name:     "verify",
			args:     []string{"verify", "p|q", "--config", config},
			contains: []string{"bdd", "eval", "gini", "gophersat"},
		},
		{
			name: "init",
			args: []string{"init", "-o", suiteFile, "--config", config},
		},
		{
			name:  "init refuses to overwrite",
			args:  []string{"init", "-o", suiteFile, "--config", config},
			fails: true,
		},
		{
			name:     "batch",
			args:     []string{"batch", "-s", suiteFile, "-b", "gophersat", "--config", config},
			contains: []string{"PASS variable: p", "PASS invalid symbol: a & 1"},
		},
		{
			name:  "bad log level",
			args:  []string{"table", "p", "--log-level", "loud", "--config", config},
			fails: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			out, err := run(tt.args...)
			if tt.fails {
				g.Expect(err).To(HaveOccurred())
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			for _, s := range tt.contains {
				g.Expect(out).To(ContainSubstring(s))
			}
		})
	}
}

func TestBatchFailures(t *testing.T) {
	g := NewGomegaWithT(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "suite.yaml")
	g.Expect(os.WriteFile(file, []byte("name: broken\ncases:\n- name: wrong\n  formula: p|q\n  dnf: (p)\n"), 0660)).To(Succeed())
	out, err := run("batch", "-s", file, "--config", writeConfig(g, dir, "{}\n"))
	g.Expect(err).To(MatchError("1 of 1 cases failed"))
	g.Expect(out).To(ContainSubstring("FAIL wrong: p|q"))
}

func TestEvaluate(t *testing.T) {
	g := NewGomegaWithT(t)
	buf := &bytes.Buffer{}
	evaluate(buf, "p -> q", compiler.Options{})
	g.Expect(buf.String()).To(ContainSubstring("Minimal CNF:   (¬p∨q)"))

	buf.Reset()
	evaluate(buf, "p &", compiler.Options{})
	g.Expect(buf.String()).To(ContainSubstring("insufficient operands"))
}

func TestPrintChecksShowsCounterexamples(t *testing.T) {
	g := NewGomegaWithT(t)
	buf := &bytes.Buffer{}
	c := &api.Compilation{
		DNF: api.Minimization{Expression: "(q)"},
		CNF: api.Minimization{Expression: "(q)"},
		Checks: []api.Check{
			{Backend: "bdd", Form: "dnf", Equivalent: false, Counterexample: map[string]bool{"p": true, "q": false}},
		},
	}
	g.Expect(printChecks(buf, c)).To(Succeed())
	g.Expect(buf.String()).To(ContainSubstring("DNF: (q)"))
	g.Expect(buf.String()).To(ContainSubstring("p=1 q=0"))
}
