package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/compiler"
	"github.com/rmohr/logicmin/pkg/report"
)

func NewReplCmd() *cobra.Command {

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "compiles formulas typed at an interactive prompt",
		Long:  `Reads one formula per line and prints its summary until 'exit' is entered or the input ends`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := options(nil)
			if err != nil {
				return err
			}
			for {
				prompt := promptui.Prompt{
					Label: "Formula (or 'exit' to quit)",
				}
				input, err := prompt.Run()
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return nil
				}
				if err != nil {
					return err
				}
				input = strings.TrimSpace(input)
				if input == "exit" || input == "quit" {
					return nil
				}
				if input == "" {
					continue
				}
				evaluate(cmd.OutOrStdout(), input, opts)
			}
		},
	}
	return replCmd
}

// evaluate prints the summary of one line, or the error in red.
func evaluate(w io.Writer, input string, opts compiler.Options) {
	c, err := compiler.Compile(input, opts)
	if err != nil {
		fmt.Fprintln(w, promptui.Styler(promptui.FGRed)(err.Error()))
		return
	}
	report.Summary(w, c)
	fmt.Fprintln(w, promptui.Styler(promptui.FGMagenta)(strings.Repeat("-", 30)))
}
