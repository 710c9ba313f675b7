package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/api"
	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/report"
	"github.com/rmohr/logicmin/pkg/sat"
)

type VerifyOpts struct {
	backends []string
}

var verifyopts = VerifyOpts{}

func NewVerifyCmd() *cobra.Command {

	verifyCmd := &cobra.Command{
		Use:   "verify <formula>",
		Short: "proves the minimized forms equivalent to the formula",
		Long:  `Checks the minimal DNF and CNF against the formula with SAT solvers, a BDD and direct evaluation and prints a counterexample where they differ`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := options(verifyopts.backends)
			if err != nil {
				return err
			}
			if len(opts.Backends) == 0 {
				opts.Backends = sat.Backends()
			}
			log.Infof("Verifying with %v.", opts.Backends)
			c, err := compiler.Compile(formulaArg(args), opts)
			if c == nil {
				return err
			}
			if perr := printChecks(cmd.OutOrStdout(), c); perr != nil {
				return perr
			}
			return err
		},
	}

	verifyCmd.Flags().StringSliceVarP(&verifyopts.backends, "backend", "b", nil, "equivalence checkers to run, defaults to all of them")
	return verifyCmd
}

// printChecks shows the minimized forms and every verdict, including the
// counterexamples of a failed check.
func printChecks(w io.Writer, c *api.Compilation) error {
	fmt.Fprintf(w, "DNF: %s\n", c.DNF.Expression)
	fmt.Fprintf(w, "CNF: %s\n", c.CNF.Expression)
	return report.Checks(w, c.Checks)
}
