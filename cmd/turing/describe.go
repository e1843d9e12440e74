package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <machine>",
	Short: "Show a machine's alphabet, states and transition table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Describe(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
