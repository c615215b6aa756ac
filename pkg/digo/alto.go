package digo

import (
	"strconv"
	"strings"

	"github.com/gardar/ocreval/pkg/geometry"
)

// parseAlto builds a DigitalObject from an ALTO element tree.
// Every TextBlock becomes a region in document order.
func parseAlto(root *node) (*DigitalObject, error) {
	var regions []Region
	for _, block := range root.findAll("TextBlock") {
		regions = append(regions, processAltoBlock(block))
	}
	return newDigitalObject(Alto, regions), nil
}

// processAltoBlock extracts a region and its lines from a TextBlock
func processAltoBlock(block *node) Region {
	var lines []TextLine
	for _, l := range block.findAll("TextLine") {
		line, ok := processAltoLine(l)
		if ok {
			lines = append(lines, line)
		}
	}
	return newRegion(block.attrVal("ID"), altoBox(block), lines)
}

// processAltoLine extracts a line from its String children; lines without words are skipped
func processAltoLine(l *node) (TextLine, bool) {
	var words []Word
	var texts []string
	for _, s := range l.findAll("String") {
		content, ok := s.attr("CONTENT")
		if !ok {
			continue
		}
		word := Word{
			ID:   s.attrVal("ID"),
			Text: content,
			BBox: altoBox(s),
		}
		if wc, ok := s.attr("WC"); ok {
			if conf, err := strconv.ParseFloat(strings.TrimSpace(wc), 64); err == nil {
				word.Confidence = &conf
			}
		}
		words = append(words, word)
		texts = append(texts, content)
	}
	if len(words) == 0 {
		return TextLine{}, false
	}

	return TextLine{
		ID:    l.attrVal("ID"),
		Text:  strings.Join(texts, " "),
		BBox:  altoBox(l),
		Words: words,
	}, true
}

// altoBox reads HPOS/VPOS/WIDTH/HEIGHT; any missing or invalid value yields nil
func altoBox(n *node) *geometry.BoundingBox {
	var vals [4]float64
	for i, name := range []string{"HPOS", "VPOS", "WIDTH", "HEIGHT"} {
		raw, ok := n.attr(name)
		if !ok {
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil
		}
		vals[i] = v
	}
	box := geometry.NewBoundingBox(vals[0], vals[1], vals[0]+vals[2], vals[1]+vals[3])
	return &box
}
