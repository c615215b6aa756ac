// Package layoutpdf renders the layout of a parsed OCR document into a PDF.
//
// Each document becomes one page sized to the document's bounding box.
// Region frames are drawn on a "Regions" layer and the recognized text is
// placed at its word (or line) coordinates on a text layer, scaled to fit
// the box. Both layers can be toggled in compatible PDF readers.
//
// Main Functions:
//
// - Render: draws a DigitalObject into a new PDF
// - DetectLayers: lists the optional content layers of a PDF
package layoutpdf

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/ocreval/pkg/digo"
)

// RegionLayerName is the layer carrying region frames
const RegionLayerName = "Regions"

// Render draws doc into a single page PDF.
// Documents without boxed regions fail with digo.ErrNoRegions.
func Render(doc *digo.DigitalObject, config Config) ([]byte, error) {
	box, err := doc.BoundingBox()
	if err != nil {
		return nil, err
	}
	w, h := box.MaxX, box.MaxY
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty page extent %vx%v", digo.ErrNoRegions, w, h)
	}

	pw, ph := w, h
	if config.MaxSide > 0 && max(w, h) > config.MaxSide {
		scale := config.MaxSide / max(w, h)
		pw, ph = w*scale, h*scale
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(doc.Path, true)
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: pw, Ht: ph})

	transform := func(x, y float64) (float64, float64) {
		return normalizeCoords(x, y, w, h, pw, ph)
	}

	drawRegionLayer(pdf, doc, transform)
	drawTextLayer(pdf, doc, config.Debug, config.LayerName, transform, config.Font)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeCoords rescales document coordinates to PDF coordinates
func normalizeCoords(x, y, docW, docH, pdfW, pdfH float64) (float64, float64) {
	nx := (x / docW) * pdfW
	ny := (y / docH) * pdfH
	return nx, ny
}
