package main

import (
	"github.com/spf13/cobra"

	"github.com/rmohr/logicmin/pkg/suite"
)

type InitOpts struct {
	name string
	out  string
}

var initopts = InitOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter suite.yaml file",
		Long:  `Create a suite of formulas with their expected minterms and minimal forms which can be run with the batch command`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return suite.NewSuiteInit(initopts.name, initopts.out).Init()
		},
	}

	initCmd.Flags().StringVarP(&initopts.name, "name", "n", "logicmin", "name of the suite")
	initCmd.Flags().StringVarP(&initopts.out, "output", "o", "suite.yaml", "where to write the suite")
	return initCmd
}
