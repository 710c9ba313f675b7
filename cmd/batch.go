package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/suite"
)

type batchOpts struct {
	suitefile string
	backends  []string
}

var batchopts = batchOpts{}

func NewBatchCmd() *cobra.Command {

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "runs a suite of formulas and compares the results",
		Long:  `Compiles every case of a suite file and compares minterms, minimal forms and errors with the expectations of the case`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := options(batchopts.backends)
			if err != nil {
				return err
			}
			s, err := suite.LoadSuiteFile(batchopts.suitefile)
			if err != nil {
				return err
			}
			logrus.Infof("Running %d cases of suite %s.", len(s.Cases), s.Name)
			w := cmd.OutOrStdout()
			failed := 0
			for i, outcome := range suite.Run(s, opts) {
				name := outcome.Case.Name
				if name == "" {
					name = fmt.Sprintf("#%d", i)
				}
				if outcome.Passed() {
					fmt.Fprintf(w, "PASS %s: %s\n", name, outcome.Case.Formula)
					continue
				}
				failed++
				fmt.Fprintf(w, "FAIL %s: %s\n", name, outcome.Case.Formula)
				fmt.Fprintf(w, "    %s\n", strings.Join(outcome.Failures, "\n    "))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(s.Cases))
			}
			logrus.Info("Done.")
			return nil
		},
	}

	batchCmd.Flags().StringVarP(&batchopts.suitefile, "suite", "s", "suite.yaml", "suite file to run")
	batchCmd.Flags().StringSliceVarP(&batchopts.backends, "backend", "b", nil, "equivalence checkers to run on every case")
	return batchCmd
}
