// Package report renders evaluation summaries as plain text, JSON,
// Markdown, HTML or PDF.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gardar/ocreval/pkg/evaluation"
	"github.com/gardar/ocreval/pkg/stats"
)

// Format selects the report rendition
type Format string

const (
	// FormatText is the plain text log style summary
	FormatText Format = "text"
	// FormatJSON is the indented JSON summary
	FormatJSON Format = "json"
	// FormatMarkdown is a GitHub flavored Markdown document
	FormatMarkdown Format = "markdown"
	// FormatHTML is the Markdown document rendered to HTML
	FormatHTML Format = "html"
	// FormatPDF is an A4 PDF table
	FormatPDF Format = "pdf"
)

// Formats lists all supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown, FormatHTML, FormatPDF}

// ParseFormat resolves a format name; "md" is accepted for Markdown.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "md" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q (want text, json, markdown, html or pdf)", name)
}

// Summary is everything a report shows about one evaluation run
type Summary struct {
	RunID      string                   `json:"run_id"`
	Date       string                   `json:"date"`
	Candidates string                   `json:"candidates"`
	Reference  string                   `json:"reference"`
	Metrics    []string                 `json:"metrics"`
	Results    []stats.EvaluationResult `json:"results"`
	Records    []evaluation.Record      `json:"records,omitempty"`
	Failures   []string                 `json:"failures,omitempty"`
}

// NewSummary collects the state of an aggregated evaluator under a fresh run id.
func NewSummary(ev *evaluation.Evaluator) Summary {
	s := Summary{
		RunID:      uuid.New().String(),
		Date:       time.Now().Format(time.DateOnly),
		Candidates: ev.Candidates(),
		Reference:  ev.Reference(),
		Results:    ev.Results(),
		Records:    ev.Records(),
	}
	for _, m := range ev.Metrics() {
		s.Metrics = append(s.Metrics, m.Label())
	}
	for _, f := range ev.Failures() {
		s.Failures = append(s.Failures, f.Error())
	}
	return s
}

// Options tunes the rendition
type Options struct {
	Details bool // Include one line or row per evaluated candidate
}

// DefaultOptions returns options for a results-only report.
func DefaultOptions() Options {
	return Options{Details: false}
}

// Write renders the summary in the given format.
func Write(w io.Writer, format Format, s Summary, opts Options) error {
	switch format {
	case FormatText:
		return WriteText(w, s, opts)
	case FormatJSON:
		return WriteJSON(w, s, opts)
	case FormatMarkdown:
		return WriteMarkdown(w, s, opts)
	case FormatHTML:
		return WriteHTML(w, s, opts)
	case FormatPDF:
		return WritePDF(w, s, opts)
	}
	return fmt.Errorf("unknown report format %q", format)
}

// candidateName shortens a candidate path to its file name without .xml
func candidateName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".xml")
}

// fixed renders a score with two decimals
func fixed(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// drops returns how many outliers the cleared result removed
func drops(r stats.EvaluationResult) int {
	if r.Cleared == nil {
		return 0
	}
	return r.NTotal - r.Cleared.NTotal
}

// scoreList renders the scores of a record like "Characters: 98.50(120)"
func scoreList(scores []evaluation.Score) string {
	parts := make([]string, len(scores))
	for i, sc := range scores {
		parts[i] = fmt.Sprintf("%s: %s(%d)", sc.Metric, fixed(sc.Value), sc.Refs)
	}
	return strings.Join(parts, ", ")
}

// typeLabel abbreviates a known groundtruth type like "(art)"
func typeLabel(gtType string) string {
	if gtType == "" || gtType == "n.a." {
		return ""
	}
	if len(gtType) > 3 {
		gtType = gtType[:3]
	}
	return "(" + gtType + ")"
}
