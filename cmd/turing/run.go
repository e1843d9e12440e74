package main

import (
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [machine]",
	Short: "Run a built-in machine",
	Long: `Runs a built-in machine from the given tape (or its sample tape) until it halts.
Each configuration is printed as a window of the tape with a caret under the head.`,
	Example: `  turing run adder --tape 11_10
  turing run busy-beaver-3 --delay 200ms
  turing run parity --tape 1011 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{Machine: "adder", Stdout: cmd.OutOrStdout()}
		if len(args) > 0 {
			opts.Machine = args[0]
		}
		if cmd.Flags().Changed("tape") {
			tape, _ := cmd.Flags().GetString("tape")
			opts.Tape = &tape
		}
		opts.Offset, _ = cmd.Flags().GetInt("offset")
		opts.Delay, _ = cmd.Flags().GetDuration("delay")
		opts.Window, _ = cmd.Flags().GetInt("window")
		opts.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
		opts.Headless, _ = cmd.Flags().GetBool("headless")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		return cli.Execute(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("tape", "t", "", "Initial tape, one symbol per character (default: the machine's sample tape)")
	runCmd.Flags().Int("offset", 0, "Tape position of the first character")
	runCmd.Flags().Duration("delay", 0, "Pause between steps (e.g. 100ms)")
	runCmd.Flags().IntP("window", "w", 10, "Cells shown on each side of the head")
	runCmd.Flags().Int("max-steps", 0, "Stop after this many transitions (0 = unbounded)")
	runCmd.Flags().Bool("headless", false, "Print only the final result")
	runCmd.Flags().Bool("json", false, "Emit an NDJSON trace of configuration diffs")
}
