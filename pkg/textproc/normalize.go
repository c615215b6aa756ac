// Package textproc prepares raw document text for comparison.
//
// Every comparison normalizes both operands with the same Unicode
// normalization form before anything else happens. On top of that the
// package offers letter filtering, whitespace tokenization, bag-of-words
// reduction and language keyed stopword filtering.
package textproc

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizationForm selects the Unicode normalization applied to text
type NormalizationForm int

const (
	// NFC is canonical decomposition followed by canonical composition (default)
	NFC NormalizationForm = iota
	// NFKC is compatibility decomposition followed by canonical composition
	NFKC
	// NFD is canonical decomposition
	NFD
	// NFKD is compatibility decomposition
	NFKD
)

// String returns the lowercase name used on the command line.
func (f NormalizationForm) String() string {
	switch f {
	case NFKC:
		return "nfkc"
	case NFD:
		return "nfd"
	case NFKD:
		return "nfkd"
	default:
		return "nfc"
	}
}

func (f NormalizationForm) form() norm.Form {
	switch f {
	case NFKC:
		return norm.NFKC
	case NFD:
		return norm.NFD
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// ParseNormalizationForm accepts nfc, nfkc, nfd or nfkd in any case.
func ParseNormalizationForm(name string) (NormalizationForm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nfc", "":
		return NFC, nil
	case "nfkc":
		return NFKC, nil
	case "nfd":
		return NFD, nil
	case "nfkd":
		return NFKD, nil
	}
	return NFC, fmt.Errorf("unknown normalization form %q (want nfc, nfkc, nfd or nfkd)", name)
}

// Normalize maps text to the given normalization form.
func Normalize(text string, form NormalizationForm) string {
	return form.form().String(text)
}

// Letters normalizes text and keeps only alphabetic characters.
// Whitespace, punctuation, digits and symbols are dropped.
func Letters(text string, form NormalizationForm) string {
	normalized := Normalize(text, form)
	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize normalizes text and splits it on runs of whitespace.
// Blank input yields an empty slice.
func Tokenize(text string, form NormalizationForm) []string {
	return strings.Fields(Normalize(text, form))
}

// BagOfWords returns the sorted set of unique tokens.
func BagOfWords(text string, form NormalizationForm) []string {
	return UniqueSorted(Tokenize(text, form))
}

// UniqueSorted returns the sorted, de-duplicated copy of tokens.
func UniqueSorted(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}
	sorted := append([]string(nil), tokens...)
	sort.Strings(sorted)
	unique := sorted[:1]
	for _, token := range sorted[1:] {
		if token != unique[len(unique)-1] {
			unique = append(unique, token)
		}
	}
	return unique
}
