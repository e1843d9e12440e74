package main

import (
	"github.com/aretw0/turing/internal/adapters/http"
	"github.com/aretw0/turing/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Exposes the built-in machines as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		limit, _ := cmd.Flags().GetInt("max-steps")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.Serve(cmd.Context(), cli.ServeOptions{
			Addr:      addr,
			StepLimit: limit,
			Debug:     debug,
			Stdout:    cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().Int("max-steps", http.DefaultStepLimit, "Upper bound on transitions per run request")
}
