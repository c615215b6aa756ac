package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gardar/ocreval/pkg/digo"
)

var scoreCmd = &cobra.Command{
	Use:   "score CANDIDATE REFERENCE",
	Short: "Score a single candidate against its reference",
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ms, err := selectedMetrics()
	if err != nil {
		return err
	}
	reference, err := digo.Load(args[1])
	if err != nil {
		return err
	}
	candidate, err := digo.Load(args[0])
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"candidate": args[0],
		"reference": args[1],
	}).Debug("scoring")

	out := cmd.OutOrStdout()
	for _, m := range ms {
		v, err := m.Calculate(candidate.Text, &reference.Text)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-12s %s (%d refs)\n", m.Label(), m.Format(v), m.RefCount(reference.Text))
	}
	return nil
}
