package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gardar/ocreval/pkg/metrics"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List the recognized metric names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, name := range metrics.Names() {
			kind, err := metrics.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-12s %s\n", name, kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
