package report

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown renders the summary as a GitHub flavored Markdown document
// with one results table and, with details, one table row per candidate.
func WriteMarkdown(w io.Writer, s Summary, opts Options) error {
	var b strings.Builder

	b.WriteString("# OCR Evaluation Summary\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", s.RunID)
	fmt.Fprintf(&b, "- Date: %s\n", s.Date)
	fmt.Fprintf(&b, "- Candidates: `%s`\n", s.Candidates)
	fmt.Fprintf(&b, "- Reference: `%s`\n", s.Reference)
	fmt.Fprintf(&b, "- Metrics: %s\n\n", strings.Join(s.Metrics, ", "))

	b.WriteString("## Results\n\n")
	b.WriteString("| Key | Items | Refs | Mean | Median | Std |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|\n")
	for _, r := range s.Results {
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %s | %s |\n",
			cell(r.EvalKey), r.NTotal, r.NChars, fixed(r.Mean), fixed(r.Median), fixed(r.Std))
		if n := drops(r); n > 0 {
			c := r.Cleared
			fmt.Fprintf(&b, "| %s (-%d) | %d | %d | %s | %s | %s |\n",
				cell(r.EvalKey), n, c.NTotal, c.NChars, fixed(c.Mean), fixed(c.Median), fixed(c.Std))
		}
	}

	if opts.Details && len(s.Records) > 0 {
		b.WriteString("\n## Candidates\n\n")
		b.WriteString("| Candidate | Type |")
		for _, m := range s.Metrics {
			fmt.Fprintf(&b, " %s |", cell(m))
		}
		b.WriteString("\n|---|---|")
		for range s.Metrics {
			b.WriteString("---:|")
		}
		b.WriteString("\n")
		for _, rec := range s.Records {
			fmt.Fprintf(&b, "| %s | %s |", cell(candidateName(rec.Entry.Candidate)), cell(rec.Entry.Type))
			for _, sc := range rec.Scores {
				fmt.Fprintf(&b, " %s |", fixed(sc.Value))
			}
			b.WriteString("\n")
		}
	}

	if len(s.Failures) > 0 {
		b.WriteString("\n## Failures\n\n")
		for _, f := range s.Failures {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// cell escapes pipes so text stays inside its table cell
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
