package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/api"
	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/report"
)

func NewKmapCmd() *cobra.Command {

	kmapCmd := &cobra.Command{
		Use:   "kmap <formula>",
		Short: "prints the Karnaugh maps of a formula",
		Long:  `Prints the Gray-ordered Karnaugh maps for the DNF and the CNF of a formula together with the selected groups`,
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
			for _, m := range []api.Minimization{c.DNF, c.CNF} {
				title := strings.ToUpper(m.Form)
				fmt.Fprintf(w, "%s Karnaugh map:\n", title)
				if err := report.Karnaugh(w, m.Karnaugh); err != nil {
					return err
				}
				fmt.Fprintf(w, "Groups:     %s\n", strings.Join(m.Karnaugh.Groups, " "))
				fmt.Fprintf(w, "Selected:   %s\n", strings.Join(m.Karnaugh.Implicants, " "))
				fmt.Fprintf(w, "Expression: %s\n\n", m.Karnaugh.Expression)
			}
			return nil
		},
	}
	return kmapCmd
}
