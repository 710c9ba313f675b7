package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/report"
)

func NewTableCmd() *cobra.Command {

	tableCmd := &cobra.Command{
		Use:   "table <formula>",
		Short: "prints the truth table of a formula",
		Long:  `Prints the truth table with one column per variable and sub-formula, followed by the minterms, maxterms and the index of the formula`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := options(nil)
			if err != nil {
				return err
			}
			c, err := compiler.Compile(formulaArg(args), opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := report.TruthTable(w, c); err != nil {
				return err
			}
			fmt.Fprintf(w, "Minterms: %v\n", c.Minterms)
			fmt.Fprintf(w, "Maxterms: %v\n", c.Maxterms)
			fmt.Fprintf(w, "Index:    %s (%s)\n", c.IndexValue, c.IndexBits)
			return nil
		},
	}
	return tableCmd
}
