package digo

import (
	"strings"
	"unicode/utf8"

	"github.com/gardar/ocreval/pkg/geometry"
)

// FormatType identifies the markup a DigitalObject was parsed from
type FormatType int

const (
	// Unknown indicates content that matched no supported format
	Unknown FormatType = iota
	// Alto indicates ALTO XML
	Alto
	// Page indicates PAGE XML
	Page
	// Text indicates plain text without layout
	Text
)

// String returns the string representation of the format.
func (f FormatType) String() string {
	switch f {
	case Alto:
		return "ALTO"
	case Page:
		return "PAGE"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the format by name.
func (f FormatType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// DigitalObject is the root of the canonical document tree.
// It exclusively owns its regions; Text format objects have none.
type DigitalObject struct {
	Format  FormatType // Format the object was parsed from
	Path    string     // Source path, empty when parsed from bytes
	Text    string     // Full extracted text
	Regions []Region   // Regions in resolved reading order
}

// Region is a block of text lines.
// Corresponds to ALTO 'TextBlock' and PAGE 'TextRegion'
type Region struct {
	ID    string                // Identifier, empty if absent
	Text  string                // Line texts joined by newlines
	BBox  *geometry.BoundingBox // Region coordinates, nil if absent
	Lines []TextLine            // Lines in this region
}

// TextLine is a single line of text.
// Corresponds to 'TextLine' in both ALTO and PAGE
type TextLine struct {
	ID    string                // Identifier, empty if absent
	Text  string                // Line text
	BBox  *geometry.BoundingBox // Line coordinates, nil if absent
	Words []Word                // Words in this line
}

// Word is a recognized word.
// Corresponds to ALTO 'String' and PAGE 'Word'
type Word struct {
	ID         string                // Identifier, empty if absent
	Text       string                // The actual text content
	Confidence *float64              // Recognition confidence in [0,1], nil if absent
	BBox       *geometry.BoundingBox // Word coordinates, nil if absent
}

// Statistics counts the parts of a DigitalObject
type Statistics struct {
	Regions int `json:"regions"`
	Lines   int `json:"lines"`
	Words   int `json:"words"`
	Chars   int `json:"chars"`
}

// RegionText returns the text of the first region with the given id.
func (d *DigitalObject) RegionText(id string) (string, bool) {
	for _, r := range d.Regions {
		if r.ID != "" && r.ID == id {
			return r.Text, true
		}
	}
	return "", false
}

// FilterByArea returns all regions whose box overlaps area with nonzero area.
func (d *DigitalObject) FilterByArea(area geometry.BoundingBox) []Region {
	var result []Region
	for _, r := range d.Regions {
		if r.BBox != nil && geometry.IntersectionArea(*r.BBox, area) > 0 {
			result = append(result, r)
		}
	}
	return result
}

// FilterByPolygon returns the regions whose box centre lies inside polygon,
// in reading order. Regions without a box are never selected.
func (d *DigitalObject) FilterByPolygon(polygon []geometry.Coordinate) []Region {
	var result []Region
	for _, r := range d.Regions {
		if r.BBox == nil {
			continue
		}
		centre := geometry.Coordinate{
			X: (r.BBox.MinX + r.BBox.MaxX) / 2,
			Y: (r.BBox.MinY + r.BBox.MaxY) / 2,
		}
		if geometry.PointInPolygon(centre, polygon) {
			result = append(result, r)
		}
	}
	return result
}

// BoundingBox returns the union of all region boxes.
func (d *DigitalObject) BoundingBox() (geometry.BoundingBox, error) {
	var box *geometry.BoundingBox
	for _, r := range d.Regions {
		if r.BBox == nil {
			continue
		}
		if box == nil {
			b := *r.BBox
			box = &b
			continue
		}
		*box = box.Union(*r.BBox)
	}
	if box == nil {
		return geometry.BoundingBox{}, ErrNoRegions
	}
	return *box, nil
}

// Lines returns all lines of all regions in reading order.
func (d *DigitalObject) Lines() []TextLine {
	var lines []TextLine
	for _, r := range d.Regions {
		lines = append(lines, r.Lines...)
	}
	return lines
}

// Statistics counts regions, lines, words and characters (runes of Text).
func (d *DigitalObject) Statistics() Statistics {
	stats := Statistics{
		Regions: len(d.Regions),
		Chars:   utf8.RuneCountInString(d.Text),
	}
	for _, r := range d.Regions {
		stats.Lines += len(r.Lines)
		for _, l := range r.Lines {
			stats.Words += len(l.Words)
		}
	}
	return stats
}

// joinTexts joins texts by newline and trims the result
func joinTexts(texts []string) string {
	return strings.TrimSpace(strings.Join(texts, "\n"))
}

// newRegion builds a region whose text is derived from its lines
func newRegion(id string, bbox *geometry.BoundingBox, lines []TextLine) Region {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return Region{ID: id, Text: joinTexts(texts), BBox: bbox, Lines: lines}
}

// newDigitalObject builds a document whose text is derived from its regions
func newDigitalObject(format FormatType, regions []Region) *DigitalObject {
	texts := make([]string, len(regions))
	for i, r := range regions {
		texts[i] = r.Text
	}
	return &DigitalObject{Format: format, Text: joinTexts(texts), Regions: regions}
}
