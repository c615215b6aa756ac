package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gardar/ocreval/pkg/metrics"
	"github.com/gardar/ocreval/pkg/textproc"
)

// Flags shared by every command that scores text
var (
	verbosity     int
	configPath    string
	metricsSpec   string
	normalization string
	language      string
)

var logger = newLogger(0, os.Stderr)

var rootCmd = &cobra.Command{
	Use:   "digital-eval [CANDIDATES]",
	Short: "Evaluate OCR output against groundtruth",
	Long: `Evaluates OCR candidates (ALTO, PAGE or plain text) against groundtruth.
Candidates are matched with groundtruth by file name, scored with the selected
metrics and aggregated per directory domain.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runEval(cmd, args)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	pf.StringVarP(&configPath, "config", "c", "", "YAML or TOML file with flag defaults")
	pf.StringVar(&metricsSpec, "metrics", "Cs,Ls", "comma separated metric names")
	pf.StringVar(&normalization, "utf8", "nfc", "unicode normalization: nfc, nfkc, nfd or nfkd")
	pf.StringVarP(&language, "language", "l", textproc.DefaultLanguage, "stopword language of the IR metrics")
	addEvalFlags(rootCmd)
}

// setup applies the config file and configures logging before any command runs
func setup(cmd *cobra.Command, _ []string) error {
	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.apply(cmd.Flags()); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
	}
	logger = newLogger(verbosity, cmd.ErrOrStderr())
	logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  configPath,
	}).Debug("starting")
	return nil
}

// selectedMetrics builds the metrics named by --metrics
func selectedMetrics() ([]metrics.Metric, error) {
	form, err := textproc.ParseNormalizationForm(normalization)
	if err != nil {
		return nil, err
	}
	return metrics.Parse(metricsSpec, form, language)
}
