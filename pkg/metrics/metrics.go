// Package metrics scores candidate text against reference text.
//
// The metric set is closed: Characters, Letters, Words and BagOfWords
// compare normalized text, while the IR metrics compare stopword filtered
// token sets. A Metric is an immutable value and may be shared by
// concurrent callers.
package metrics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gardar/ocreval/pkg/textproc"
)

var (
	// ErrMissingReference reports a metric invoked without reference text
	ErrMissingReference = errors.New("reference required")
	// ErrUnknownMetric reports an unrecognized metric name
	ErrUnknownMetric = errors.New("unknown metric")
)

// Kind identifies one of the supported metrics
type Kind int

const (
	// Characters compares all characters by edit distance
	Characters Kind = iota
	// Letters compares letters only, ignoring punctuation, digits and whitespace
	Letters
	// Words compares the word sequences by edit distance
	Words
	// BagOfWords compares the word sets regardless of order
	BagOfWords
	// IRPrecision is the share of candidate terms found in the reference
	IRPrecision
	// IRRecall is the share of reference terms found in the candidate
	IRRecall
	// IRFMeasure is the harmonic mean of IRPrecision and IRRecall
	IRFMeasure
)

// String returns the label of the metric kind.
func (k Kind) String() string {
	switch k {
	case Characters:
		return "Characters"
	case Letters:
		return "Letters"
	case Words:
		return "Words"
	case BagOfWords:
		return "BagOfWords"
	case IRPrecision:
		return "IR-Precision"
	case IRRecall:
		return "IR-Recall"
	case IRFMeasure:
		return "IR-FMeasure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Metric is a configured scorer
type Metric struct {
	kind      Kind
	norm      textproc.NormalizationForm
	language  string
	stopwords textproc.Stopwords
}

// New creates a metric. norm applies to the textual metrics; the IR metrics
// always tokenize NFC text and filter stopwords of language.
func New(kind Kind, norm textproc.NormalizationForm, language string) Metric {
	return Metric{
		kind:      kind,
		norm:      norm,
		language:  language,
		stopwords: textproc.StopwordsFor(language),
	}
}

// Kind returns the metric kind.
func (m Metric) Kind() Kind { return m.kind }

// Label returns the human readable name of the metric.
func (m Metric) Label() string { return m.kind.String() }

// Precision returns the number of decimal places used for display.
func (m Metric) Precision() int { return 2 }

// Format renders a score with the metric's precision.
func (m Metric) Format(v float64) string {
	return fmt.Sprintf("%.*f", m.Precision(), v)
}

// Language returns the configured stopword language code.
func (m Metric) Language() string { return m.language }

// Calculate scores candidate against reference in [0,100].
// A nil reference fails with ErrMissingReference.
func (m Metric) Calculate(candidate string, reference *string) (float64, error) {
	if reference == nil {
		return 0, fmt.Errorf("%s: %w", m.Label(), ErrMissingReference)
	}
	return m.Score(candidate, *reference), nil
}

// Score scores candidate against a present reference in [0,100].
func (m Metric) Score(candidate, reference string) float64 {
	switch m.kind {
	case Characters:
		return similarity(textproc.Normalize(candidate, m.norm), textproc.Normalize(reference, m.norm))
	case Letters:
		return similarity(textproc.Letters(candidate, m.norm), textproc.Letters(reference, m.norm))
	case Words:
		return similarity(
			strings.Join(textproc.Tokenize(candidate, m.norm), " "),
			strings.Join(textproc.Tokenize(reference, m.norm), " "),
		)
	case BagOfWords:
		return jaccard(textproc.BagOfWords(candidate, m.norm), textproc.BagOfWords(reference, m.norm))
	case IRPrecision:
		can, ref := m.irSets(candidate, reference)
		return precision(can, ref)
	case IRRecall:
		can, ref := m.irSets(candidate, reference)
		return recall(can, ref)
	case IRFMeasure:
		can, ref := m.irSets(candidate, reference)
		return fmeasure(precision(can, ref), recall(can, ref))
	}
	return 0
}

// RefCount returns the number of reference units the metric compares.
func (m Metric) RefCount(reference string) int {
	switch m.kind {
	case Characters:
		return runeLen(textproc.Normalize(reference, m.norm))
	case Letters:
		return runeLen(textproc.Letters(reference, m.norm))
	case Words:
		return len(textproc.Tokenize(reference, m.norm))
	case BagOfWords:
		return len(textproc.BagOfWords(reference, m.norm))
	default:
		return len(m.irSet(reference))
	}
}

// irSet tokenizes NFC text, drops stopwords and reduces the rest to a set
func (m Metric) irSet(text string) map[string]struct{} {
	tokens := m.stopwords.Filter(textproc.Tokenize(text, textproc.NFC))
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func (m Metric) irSets(candidate, reference string) (map[string]struct{}, map[string]struct{}) {
	return m.irSet(candidate), m.irSet(reference)
}

// jaccard computes |A∩B| / |A∪B| over sorted unique token lists
func jaccard(candidate, reference []string) float64 {
	if len(candidate) == 0 && len(reference) == 0 {
		return 100
	}
	if len(candidate) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(reference))
	for _, t := range reference {
		set[t] = struct{}{}
	}
	common := 0
	for _, t := range candidate {
		if _, ok := set[t]; ok {
			common++
		}
	}
	union := len(candidate) + len(reference) - common
	if union == 0 {
		return 100
	}
	return 100 * float64(common) / float64(union)
}

func intersection(a, b map[string]struct{}) int {
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}

func precision(candidate, reference map[string]struct{}) float64 {
	if len(candidate) == 0 {
		return 0
	}
	return 100 * float64(intersection(candidate, reference)) / float64(len(candidate))
}

func recall(candidate, reference map[string]struct{}) float64 {
	if len(reference) == 0 {
		return 0
	}
	return 100 * float64(intersection(candidate, reference)) / float64(len(reference))
}

func fmeasure(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
