package layoutpdf

import (
	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/ocreval/pkg/digo"
	"github.com/gardar/ocreval/pkg/geometry"
	"github.com/gardar/ocreval/pkg/textproc"
)

type transformFunc func(x, y float64) (float64, float64)

// drawRegionLayer frames every region that has a bounding box
func drawRegionLayer(pdf *fpdf.Fpdf, doc *digo.DigitalObject, transform transformFunc) {
	layer := pdf.AddLayer(RegionLayerName, true)
	pdf.BeginLayer(layer)
	pdf.SetDrawColor(0, 102, 204)
	pdf.SetLineWidth(1)

	for _, region := range doc.Regions {
		if region.BBox != nil {
			drawBox(pdf, *region.BBox, transform)
		}
	}

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.EndLayer()
}

// drawTextLayer places the text of every line on the page.
// Words with a box are drawn individually; otherwise the whole line text
// is fitted into the line box. Lines without any box are skipped.
func drawTextLayer(
	pdf *fpdf.Fpdf,
	doc *digo.DigitalObject,
	debug bool,
	layerName string,
	transform transformFunc,
	fontConfig FontConfig,
) {
	layer := pdf.AddLayer(layerName, true)
	pdf.BeginLayer(layer)
	pdf.SetFont(fontConfig.Name, fontConfig.Style, fontConfig.Size)
	if debug {
		pdf.SetDrawColor(255, 0, 0) // outline text boxes in red
	}

	for _, line := range doc.Lines() {
		drawn := 0
		for _, word := range line.Words {
			if word.BBox != nil && word.Text != "" {
				drawText(pdf, word.Text, *word.BBox, transform, fontConfig, debug)
				drawn++
			}
		}
		if drawn == 0 && line.BBox != nil && line.Text != "" {
			drawText(pdf, line.Text, *line.BBox, transform, fontConfig, debug)
		}
	}

	pdf.EndLayer()
}

// drawText renders text scaled to the width of its box
func drawText(pdf *fpdf.Fpdf, text string, box geometry.BoundingBox, transform transformFunc,
	fontConfig FontConfig, debug bool) {

	x, y := transform(box.MinX, box.MinY)
	x2, y2 := transform(box.MaxX, box.MaxY)
	width := x2 - x

	// Core fonts only cover ISO-8859-1
	latin1, _ := textproc.ToLatin1(text)

	strWidth := pdf.GetStringWidth(latin1)
	if strWidth > 0 && width > 0 {
		scale := width / strWidth
		pdf.SetFontSize(fontConfig.Size * scale)
	}

	fontSize, _ := pdf.GetFontSize()
	pdf.Text(x, y+fontSize*fontConfig.AscentRatio, latin1)
	pdf.SetFontSize(fontConfig.Size)

	if debug {
		pdf.Rect(x, y, width, y2-y, "D")
	}
}

// drawBox strokes a bounding box
func drawBox(pdf *fpdf.Fpdf, box geometry.BoundingBox, transform transformFunc) {
	x, y := transform(box.MinX, box.MinY)
	x2, y2 := transform(box.MaxX, box.MaxY)
	pdf.Rect(x, y, x2-x, y2-y, "D")
}
