package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gardar/ocreval/pkg/evaluation"
	"github.com/gardar/ocreval/pkg/report"
	"github.com/gardar/ocreval/pkg/resolve"
)

// Evaluation flags, shared by the root and the eval command
var (
	referencePath   string
	workers         int
	sequential      bool
	continueOnError bool
	byType          bool
	reportFormat    string
	details         bool
	outputPath      string
)

var evalCmd = &cobra.Command{
	Use:   "eval CANDIDATES",
	Short: "Evaluate a candidate tree against groundtruth",
	Long: `Gathers ALTO, PAGE and plain text candidates below CANDIDATES, matches each with
its groundtruth below --reference and reports the aggregated scores per domain.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	addEvalFlags(evalCmd)
	rootCmd.AddCommand(evalCmd)
}

func addEvalFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&referencePath, "reference", "r", "", "groundtruth root directory")
	f.IntVarP(&workers, "workers", "w", 1, "concurrent evaluations, 0 picks one from the CPU count")
	f.BoolVarP(&sequential, "sequential", "s", false, "evaluate one candidate at a time")
	f.BoolVar(&continueOnError, "continue-on-error", false, "report failing candidates instead of aborting")
	f.BoolVar(&byType, "by-type", false, "also aggregate per groundtruth type")
	f.StringVar(&reportFormat, "format", string(report.FormatText), "report format: text, json, markdown, html or pdf")
	f.BoolVar(&details, "details", false, "include per candidate scores in the report")
	f.StringVarP(&outputPath, "output", "o", "", "report file, stdout when empty")
}

func runEval(cmd *cobra.Command, args []string) error {
	candidates := filepath.Clean(args[0])
	if referencePath == "" {
		return errors.New("--reference is required")
	}
	reference := filepath.Clean(referencePath)

	format, err := report.ParseFormat(reportFormat)
	if err != nil {
		return err
	}
	if format == report.FormatPDF && outputPath == "" {
		return errors.New("pdf reports need --output")
	}
	ms, err := selectedMetrics()
	if err != nil {
		return err
	}

	if filepath.Base(candidates) != filepath.Base(reference) {
		logger.Warnf("start domains '%s' and '%s' mismatch, summary might be inaccurate",
			filepath.Base(candidates), filepath.Base(reference))
	}

	entries, err := resolve.GatherCandidates(candidates)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		logger.Warnf("no ocr data (.xml, .txt) below '%s'", candidates)
		return nil
	}
	matched, unmatched, err := resolve.Match(entries, reference)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"candidates": len(entries),
		"unmatched":  unmatched,
	}).Info("matched groundtruth")

	cfg := evaluation.Config{
		Workers: workers,
		Policy:  evaluation.FailFast,
		Logger:  logger,
	}
	if sequential {
		cfg.Workers = 1
	}
	if continueOnError {
		cfg.Policy = evaluation.CollectErrors
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	ev := evaluation.New(candidates, reference, ms, cfg)
	if err := ev.EvalAll(ctx, matched); err != nil {
		return err
	}
	if n := len(ev.Failures()); n > 0 {
		logger.Warnf("%d candidates failed and are excluded", n)
	}
	if err := ev.Aggregate(byType); err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), format, report.NewSummary(ev))
}

// writeReport renders the summary to --output or w
func writeReport(w io.Writer, format report.Format, s report.Summary) error {
	opts := report.DefaultOptions()
	opts.Details = details
	if outputPath == "" {
		return report.Write(w, format, s, opts)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := report.Write(f, format, s, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.WithField("output", outputPath).Info("report written")
	return nil
}
