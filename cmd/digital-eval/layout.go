package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gardar/ocreval/pkg/digo"
	"github.com/gardar/ocreval/pkg/layoutpdf"
)

var (
	layoutOutput    string
	layoutDebug     bool
	layoutLayer     string
	layoutOverwrite bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout FILE",
	Short: "Render the layout of an ALTO or PAGE file as PDF",
	Long: `Draws region frames and the recognized text of an ALTO or PAGE file at their
coordinates into a single page PDF with toggleable layers.`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	f := layoutCmd.Flags()
	f.StringVarP(&layoutOutput, "output", "o", "", "output PDF path (required)")
	f.BoolVar(&layoutDebug, "debug", false, "outline word and line boxes")
	f.StringVar(&layoutLayer, "layer", layoutpdf.DefaultConfig().LayerName, "name of the text layer")
	f.BoolVar(&layoutOverwrite, "overwrite", false, "overwrite the output PDF if it already exists")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	if layoutOutput == "" {
		return errors.New("--output is required")
	}
	if _, err := os.Stat(layoutOutput); err == nil && !layoutOverwrite {
		return fmt.Errorf("output file %s already exists, use --overwrite to replace it", layoutOutput)
	}

	doc, err := digo.Load(args[0])
	if err != nil {
		return err
	}

	cfg := layoutpdf.DefaultConfig()
	cfg.Debug = layoutDebug
	cfg.LayerName = layoutLayer

	data, err := layoutpdf.Render(doc, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(layoutOutput, data, 0666); err != nil {
		return fmt.Errorf("failed to write output PDF: %w", err)
	}
	logger.WithField("output", layoutOutput).Info("layout PDF written")
	fmt.Fprintln(cmd.OutOrStdout(), "Layout PDF created:", layoutOutput)
	return nil
}
