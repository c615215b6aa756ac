package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gardar/ocreval/pkg/digo"
	"github.com/gardar/ocreval/pkg/geometry"
)

var (
	inspectText  bool
	inspectJSON  bool
	inspectFrame string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Show the structure of an OCR file",
	Long: `Prints format, statistics, bounding box and region ids of an ALTO, PAGE or
plain text file. With --frame only regions centred inside the polygon are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectText, "text", false, "print the text of every shown region")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output the parsed document as JSON")
	inspectCmd.Flags().StringVar(&inspectFrame, "frame", "", `polygon points "x,y x,y x,y ..." selecting regions`)
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := digo.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	regions := doc.Regions
	if inspectFrame != "" {
		polygon, err := geometry.ParsePolygon(inspectFrame)
		if err != nil {
			return fmt.Errorf("invalid --frame: %w", err)
		}
		regions = doc.FilterByPolygon(polygon)
	}

	if inspectJSON {
		shown := *doc
		shown.Regions = regions
		data, err := json.MarshalIndent(shown, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	st := doc.Statistics()
	fmt.Fprintf(out, "File:    %s\n", doc.Path)
	fmt.Fprintf(out, "Format:  %s\n", doc.Format)
	fmt.Fprintf(out, "Regions: %d, Lines: %d, Words: %d, Chars: %d\n", st.Regions, st.Lines, st.Words, st.Chars)
	if box, err := doc.BoundingBox(); err == nil {
		fmt.Fprintf(out, "Bounds:  %s\n", box)
	} else {
		fmt.Fprintln(out, "Bounds:  n.a.")
	}

	for _, r := range regions {
		id := r.ID
		if id == "" {
			id = "-"
		}
		box := "n.a."
		if r.BBox != nil {
			box = r.BBox.String()
		}
		fmt.Fprintf(out, "  %-12s %-28s %d lines\n", id, box, len(r.Lines))
		if inspectText && r.Text != "" {
			for _, line := range strings.Split(r.Text, "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
	return nil
}
