package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logicmin",
		Short: "logicmin compiles propositional formulas into minimal normal forms",
		Long:  `The tool parses a propositional formula, builds its truth table and derives minimal disjunctive and conjunctive normal forms with the Quine-McCluskey method, cross-checked against a Karnaugh map and SAT solvers`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(rootopts.logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&rootopts.config, "config", "c", "", "config file, defaults to logicmin/config.yaml in the XDG config directories")
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&rootopts.allowUppercase, "allow-uppercase", "u", false, "accept uppercase letters as variables")
	rootCmd.PersistentFlags().IntVar(&rootopts.maxVariables, "max-variables", 0, "refuse formulas with more variables than this")

	rootCmd.AddCommand(NewCompileCmd())
	rootCmd.AddCommand(NewTableCmd())
	rootCmd.AddCommand(NewMinimizeCmd())
	rootCmd.AddCommand(NewKmapCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewReplCmd())
	rootCmd.AddCommand(NewBatchCmd())
	rootCmd.AddCommand(NewInitCmd())
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
