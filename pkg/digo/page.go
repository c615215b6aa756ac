package digo

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gardar/ocreval/pkg/geometry"
)

// parsePage builds a DigitalObject from a PAGE element tree.
// Regions are ordered by the document's ReadingOrder; nested regions are
// merged into their outermost TextRegion.
func parsePage(root *node) (*DigitalObject, error) {
	var regions []Region
	for _, r := range root.findAll("TextRegion") {
		region, err := processPageRegion(r)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}

	var order map[string]int
	if ro := root.findAll("ReadingOrder"); len(ro) > 0 {
		order = readingOrderPositions(ro[0])
	}
	return newDigitalObject(Page, resolveReadingOrder(regions, order)), nil
}

// processPageRegion extracts a region and all lines below it
func processPageRegion(r *node) (Region, error) {
	bbox, err := pageCoords(r)
	if err != nil {
		return Region{}, err
	}

	var lines []TextLine
	for _, l := range r.findAll("TextLine") {
		line, err := processPageLine(l)
		if err != nil {
			return Region{}, err
		}
		lines = append(lines, line)
	}

	region := newRegion(r.attrVal("id"), bbox, lines)
	if region.Text == "" {
		// Regions transcribed without line text still carry their own text
		if text, _, ok := textEquiv(r); ok {
			region.Text = text
		}
	}
	return region, nil
}

// processPageLine extracts a line; its text is empty when it has neither
// a TextEquiv nor words
func processPageLine(l *node) (TextLine, error) {
	bbox, err := pageCoords(l)
	if err != nil {
		return TextLine{}, err
	}

	var words []Word
	for _, w := range l.findAll("Word") {
		word, err := processPageWord(w)
		if err != nil {
			return TextLine{}, err
		}
		words = append(words, word)
	}

	text, _, hasText := textEquiv(l)
	if !hasText {
		texts := make([]string, 0, len(words))
		for _, w := range words {
			if w.Text != "" {
				texts = append(texts, w.Text)
			}
		}
		text = strings.Join(texts, " ")
	}

	return TextLine{
		ID:    l.attrVal("id"),
		Text:  text,
		BBox:  bbox,
		Words: words,
	}, nil
}

// processPageWord extracts a word with its confidence from the element or its TextEquiv
func processPageWord(w *node) (Word, error) {
	bbox, err := pageCoords(w)
	if err != nil {
		return Word{}, err
	}

	text, equivConf, _ := textEquiv(w)
	word := Word{
		ID:   w.attrVal("id"),
		Text: text,
		BBox: bbox,
	}

	rawConf, ok := w.attr("conf")
	if !ok {
		rawConf, ok = equivConf, equivConf != ""
	}
	if ok {
		if conf, err := strconv.ParseFloat(strings.TrimSpace(rawConf), 64); err == nil {
			word.Confidence = &conf
		}
	}
	return word, nil
}

// textEquiv returns the Unicode text of the preferred TextEquiv child and its conf attribute.
// The TextEquiv with the lowest index wins; without indices the first one is used.
func textEquiv(n *node) (string, string, bool) {
	var best *node
	bestIndex := 0
	for _, c := range n.Children {
		if c.Name != "TextEquiv" {
			continue
		}
		idx, err := strconv.Atoi(c.attrVal("index"))
		if err != nil {
			idx = int(^uint(0) >> 1)
		}
		if best == nil || idx < bestIndex {
			best, bestIndex = c, idx
		}
	}
	if best == nil {
		return "", "", false
	}
	unicode := best.child("Unicode")
	if unicode == nil {
		return "", "", false
	}
	return unicode.textContent(), best.attrVal("conf"), true
}

// pageCoords reads the points of a direct Coords child.
// A missing or empty points attribute yields nil; a malformed one is an error.
func pageCoords(n *node) (*geometry.BoundingBox, error) {
	coords := n.child("Coords")
	if coords == nil {
		return nil, nil
	}
	points := strings.TrimSpace(coords.attrVal("points"))
	if points == "" {
		return nil, nil
	}
	return polygonBox(points)
}

// readingOrderPositions flattens a ReadingOrder element into region id → position.
// Indexed groups are visited by ascending index, unordered groups in document
// order. Indexed entries with a missing or non-integer index are ignored.
func readingOrderPositions(ro *node) map[string]int {
	positions := make(map[string]int)
	next := 0
	var visit func(*node)
	visit = func(group *node) {
		type entry struct {
			index int
			n     *node
		}
		var entries []entry
		for i, c := range group.Children {
			switch c.Name {
			case "RegionRefIndexed", "OrderedGroupIndexed", "UnorderedGroupIndexed":
				idx, err := strconv.Atoi(strings.TrimSpace(c.attrVal("index")))
				if err != nil || idx < 0 {
					continue
				}
				entries = append(entries, entry{index: idx, n: c})
			case "RegionRef", "OrderedGroup", "UnorderedGroup":
				entries = append(entries, entry{index: i, n: c})
			}
		}
		slices.SortStableFunc(entries, func(a, b entry) int { return a.index - b.index })

		// refs sharing an index share a position, document order decides later
		prev, cur := -1, -1
		for _, e := range entries {
			if strings.HasPrefix(e.n.Name, "RegionRef") {
				if cur < 0 || e.index != prev {
					cur = next
					next++
				}
				prev = e.index
				ref := e.n.attrVal("regionRef")
				if _, seen := positions[ref]; ref != "" && !seen {
					positions[ref] = cur
				}
				continue
			}
			visit(e.n)
			prev, cur = -1, -1
		}
	}
	for _, c := range ro.Children {
		visit(c)
	}
	return positions
}

// resolveReadingOrder stably sorts regions by their reading order position.
// Regions without an id or not referenced by the order follow in document order.
func resolveReadingOrder(regions []Region, positions map[string]int) []Region {
	if len(positions) == 0 {
		return regions
	}

	var ordered, rest []Region
	for _, r := range regions {
		if _, ok := positions[r.ID]; ok && r.ID != "" {
			ordered = append(ordered, r)
		} else {
			rest = append(rest, r)
		}
	}
	slices.SortStableFunc(ordered, func(a, b Region) int {
		return positions[a.ID] - positions[b.ID]
	})
	return append(ordered, rest...)
}
