package main

import (
	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/render"
	"github.com/rmohr/logicmin/pkg/report"
)

type minimizeOpts struct {
	vars   []string
	terms  []uint
	cnf    bool
	output string
}

var minimizeopts = minimizeOpts{}

func NewMinimizeCmd() *cobra.Command {

	minimizeCmd := &cobra.Command{
		Use:   "minimize",
		Short: "minimizes a raw list of terms",
		Long:  `Runs the Quine-McCluskey reduction directly on minterms, or on maxterms with --cnf. The first variable is the most significant bit of a term`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := options(nil)
			if err != nil {
				return err
			}
			form := render.DNF
			if minimizeopts.cnf {
				form = render.CNF
			}
			m, err := compiler.MinimizeTerms(minimizeopts.terms, minimizeopts.vars, form, opts)
			if err != nil {
				return err
			}
			format := outputFormat(cfg, minimizeopts.output)
			if format == report.FormatText {
				return report.Minimization(cmd.OutOrStdout(), *m)
			}
			return report.Encode(cmd.OutOrStdout(), m, format)
		},
	}

	minimizeCmd.Flags().StringSliceVar(&minimizeopts.vars, "vars", nil, "variable names, most significant first")
	minimizeCmd.Flags().UintSliceVar(&minimizeopts.terms, "terms", nil, "terms to cover")
	minimizeCmd.Flags().BoolVar(&minimizeopts.cnf, "cnf", false, "treat the terms as maxterms and derive a CNF")
	minimizeCmd.Flags().StringVarP(&minimizeopts.output, "output", "o", "", "output format (text, yaml, json)")
	err := minimizeCmd.MarkFlagRequired("vars")
	if err != nil {
		panic(err)
	}
	return minimizeCmd
}
