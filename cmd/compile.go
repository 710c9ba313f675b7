package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/report"
)

type compileOpts struct {
	output   string
	backends []string
}

var compileopts = compileOpts{}

func NewCompileCmd() *cobra.Command {

	compileCmd := &cobra.Command{
		Use:   "compile <formula>",
		Short: "runs the whole pipeline on a formula",
		Long:  `Parses the formula, evaluates its truth table and prints the minimal DNF and CNF together with every intermediate step`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := options(compileopts.backends)
			if err != nil {
				return err
			}
			logrus.Info("Compiling formula.")
			c, err := compiler.Compile(formulaArg(args), opts)
			if err != nil {
				return err
			}
			format := outputFormat(cfg, compileopts.output)
			if format == report.FormatText {
				return report.Compilation(cmd.OutOrStdout(), c)
			}
			return report.Encode(cmd.OutOrStdout(), c, format)
		},
	}

	compileCmd.Flags().StringVarP(&compileopts.output, "output", "o", "", "output format (text, yaml, json)")
	compileCmd.Flags().StringSliceVarP(&compileopts.backends, "backend", "b", nil, "equivalence checkers to run on the result (gophersat, gini, bdd, eval)")
	return compileCmd
}
