package digo

import (
	"bytes"
	"strings"
)

var (
	altoMarkers = []string{"<alto", "www.loc.gov/standards/alto"}
	pageMarkers = []string{"<PcGts", "primaresearch.org/PAGE"}
)

// Detect determines the format of raw content.
//
// Root markers and namespaces win first. Remaining XML is classified by the
// vocabulary it uses; anything that is not XML is plain text.
func Detect(data []byte) FormatType {
	content := string(bytes.TrimSpace(stripBOM(data)))

	if containsAny(content, altoMarkers) {
		return Alto
	}
	if containsAny(content, pageMarkers) {
		return Page
	}

	if strings.HasPrefix(content, "<?xml") {
		switch {
		case strings.Contains(content, "String") && strings.Contains(content, "CONTENT"):
			return Alto
		case strings.Contains(content, "TextLine") && strings.Contains(content, "TextEquiv"):
			return Page
		}
		return Unknown
	}

	return Text
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
