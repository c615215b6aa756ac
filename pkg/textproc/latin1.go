package textproc

import (
	"golang.org/x/text/encoding/charmap"
)

// ToLatin1 encodes text as ISO-8859-1 for the core PDF fonts.
// Characters outside Latin-1 become '?'; ok reports whether none were replaced.
func ToLatin1(text string) (string, bool) {
	if latin1, err := charmap.ISO8859_1.NewEncoder().String(text); err == nil {
		return latin1, true
	}
	b := make([]byte, 0, len(text))
	for _, r := range text {
		if eb, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b = append(b, eb)
		} else {
			b = append(b, '?')
		}
	}
	return string(b), false
}
