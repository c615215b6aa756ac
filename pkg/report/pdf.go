package report

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/ocreval/pkg/textproc"
)

// resultColumns are the headers and widths (mm) of the results table
var resultColumns = []struct {
	title string
	width float64
	align string
}{
	{"Key", 78, "L"},
	{"Items", 18, "R"},
	{"Refs", 22, "R"},
	{"Mean", 18, "R"},
	{"Median", 18, "R"},
	{"Std", 16, "R"},
}

// WritePDF renders the summary as an A4 PDF with a results table.
// Text outside ISO-8859-1 is replaced, as the core fonts cannot show it.
func WritePDF(w io.Writer, s Summary, opts Options) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("OCR Evaluation Summary", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "OCR Evaluation Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		"Run: " + s.RunID,
		"Date: " + s.Date,
		"Candidates: " + s.Candidates,
		"Reference: " + s.Reference,
	} {
		pdf.Cell(0, 6, latin1(line))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range resultColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	row := func(key string, r resultRow) {
		values := []string{latin1(key), fmt.Sprint(r.items), fmt.Sprint(r.refs), fixed(r.mean), fixed(r.median), fixed(r.std)}
		for i, c := range resultColumns {
			pdf.CellFormat(c.width, 6, values[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	for _, r := range s.Results {
		row(r.EvalKey, resultRow{r.NTotal, r.NChars, r.Mean, r.Median, r.Std})
		if n := drops(r); n > 0 {
			c := r.Cleared
			row(fmt.Sprintf("%s (-%d)", r.EvalKey, n), resultRow{c.NTotal, c.NChars, c.Mean, c.Median, c.Std})
		}
	}

	if opts.Details && len(s.Records) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Candidates")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 8)
		for _, rec := range s.Records {
			line := fmt.Sprintf("[%s]%s %s", candidateName(rec.Entry.Candidate), typeLabel(rec.Entry.Type), scoreList(rec.Scores))
			pdf.MultiCell(0, 5, latin1(line), "", "L", false)
		}
	}

	if len(s.Failures) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Failures")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 8)
		for _, f := range s.Failures {
			pdf.MultiCell(0, 5, latin1(f), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	return nil
}

type resultRow struct {
	items, refs       int
	mean, median, std float64
}

func latin1(s string) string {
	encoded, _ := textproc.ToLatin1(s)
	return encoded
}
