package layoutpdf

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// PDF literal strings may contain escaped parentheses
const pdfLiteral = `\(((?:\\.|[^\\)])*)\)`

var ocgPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)/Type\s*/OCG\s*/Name\s*` + pdfLiteral),
	regexp.MustCompile(`(?s)<</Type/OCG/Name` + pdfLiteral),
	regexp.MustCompile(`(?s)/Name\s*` + pdfLiteral + `.{1,50}?/Type\s*/OCG`),
}

// DetectLayers finds the names of optional content groups in raw PDF data.
func DetectLayers(pdfData []byte) ([]string, error) {
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("empty PDF data")
	}

	content := string(pdfData)
	var layers []string
	seen := make(map[string]bool)
	for _, pattern := range ocgPatterns {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			name := decodePDFText(unescapePDFString(match[1]))
			if !seen[name] {
				seen[name] = true
				layers = append(layers, name)
			}
		}
	}
	return layers, nil
}

// HasLayer reports whether pdfData carries a layer with the given name
func HasLayer(pdfData []byte, name string) bool {
	layers, err := DetectLayers(pdfData)
	if err != nil {
		return false
	}
	for _, l := range layers {
		if l == name {
			return true
		}
	}
	return false
}

var pdfEscapes = strings.NewReplacer(
	`\(`, "(",
	`\)`, ")",
	`\\`, `\`,
	`\r`, "\r",
	`\n`, "\n",
	`\t`, "\t",
)

func unescapePDFString(s string) string {
	return pdfEscapes.Replace(s)
}

// decodePDFText converts UTF-16BE text strings marked by a BOM
func decodePDFText(s string) string {
	if !strings.HasPrefix(s, "\xfe\xff") {
		return s
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	decoded, err := dec.String(s)
	if err != nil {
		return s
	}
	return decoded
}
