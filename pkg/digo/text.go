package digo

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// parseText wraps plain text into a DigitalObject without regions.
// Content that is not valid UTF-8 is decoded as ISO-8859-1.
func parseText(data []byte) *DigitalObject {
	data = stripBOM(data)
	if !utf8.Valid(data) {
		// ISO-8859-1 maps every byte, so decoding cannot fail
		if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
			data = decoded
		}
	}
	return &DigitalObject{Format: Text, Text: string(data)}
}
