package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <machine>",
	Short: "Export the state diagram",
	Long: `Outputs a Mermaid diagram (stateDiagram-v2) of the machine's transition table.
With --tape the machine is run first and the visited states and the state it
stopped in are highlighted.`,
	Example: `  turing graph adder
  turing graph parity --tape 1011`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.GraphOptions{Machine: args[0]}
		if cmd.Flags().Changed("tape") {
			tape, _ := cmd.Flags().GetString("tape")
			opts.Tape = &tape
		}
		opts.Offset, _ = cmd.Flags().GetInt("offset")
		opts.MaxSteps, _ = cmd.Flags().GetInt("max-steps")

		return cli.Graph(cmd.Context(), cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("tape", "t", "", "Run the machine on this tape and highlight the visited states")
	graphCmd.Flags().Int("offset", 0, "Tape position of the first character")
	graphCmd.Flags().Int("max-steps", 100000, "Stop the highlighted run after this many transitions (0 = unbounded)")
}
