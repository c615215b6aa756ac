package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/ocreval/pkg/textproc"
)

const (
	theLazyFox     = "the lazy brown fox jumps over the hump"
	theCombinedFox = "the a\u0301 lazy brown fox jumps over the hump"
	theFoxLazy     = "the fox lazy brown jumps over the hump"
	theFoxInputIR  = "the hump lazy brown fox fox fox jumps"
)

var allKinds = []Kind{Characters, Letters, Words, BagOfWords, IRPrecision, IRRecall, IRFMeasure}

func score(kind Kind, candidate, reference string) float64 {
	return New(kind, textproc.NFC, textproc.DefaultLanguage).Score(candidate, reference)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b       string
		want       int
		similarity float64
	}{
		{"", "", 0, 100},
		{"abc", "", 3, 0},
		{"", "abc", 3, 0},
		{"kitten", "sitting", 3, 100 * (1 - 3.0/7.0)},
		{"hello", "hallo", 1, 80},
		{"Müller", "Muller", 1, 100 * (1 - 1.0/6.0)},
		{"ſtraße", "strasse", 3, 100 * (1 - 3.0/7.0)},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
			assert.InDelta(t, tt.similarity, similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestIdenticalTextScoresFull(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, 100.0, score(kind, theLazyFox, theLazyFox))
		})
	}
}

func TestEditDistanceMetrics_EmptyOperands(t *testing.T) {
	for _, kind := range []Kind{Characters, Letters, Words} {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, 0.0, score(kind, theLazyFox, ""))
			assert.Equal(t, 100.0, score(kind, "", ""))
		})
	}
}

func TestCharacters(t *testing.T) {
	// s→f, v→u and one inserted space over 39 runes
	got := score(Characters, "fthe lazy brown fox jumps ouer the hump", "sthe lazy brown fox jumps overthe hump")
	assert.InDelta(t, 92.31, got, 0.01)

	// NFC composes the accent, leaving two inserted runes over 40
	assert.InDelta(t, 95.0, score(Characters, theCombinedFox, theLazyFox), 1e-9)
}

func TestLetters(t *testing.T) {
	assert.Equal(t, 100.0, score(Letters, "Hello, World!", "Hello World!"))
	assert.Equal(t, 100.0, score(Letters, "1. Kapitel", "Kapitel 2"))
}

func TestWords(t *testing.T) {
	got := score(Words, theFoxLazy, theLazyFox)
	assert.Greater(t, got, 70.0)
	assert.Less(t, got, 85.0)

	// Runs of whitespace collapse to single separators
	assert.Equal(t, 100.0, score(Words, "der  Hund\n bellt", "der Hund bellt"))
}

func TestBagOfWords(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		reference string
		want      float64
	}{
		{"reordered", theFoxLazy, theLazyFox, 100},
		{"repetitions", "a a b", "a b", 100},
		{"both empty", "", "", 100},
		{"empty candidate", "", "a b", 0},
		{"empty reference", "a b", "", 0},
		{"ocr-d example", "cer Mann fteht an der Ampel", "der Mann steht an der Ampel", 400.0 / 7.0},
		{"reference has more", "cer Mann fteht an der Ampel", "der Mann steht an der roten Ampel", 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, score(BagOfWords, tt.candidate, tt.reference), 1e-9)
		})
	}
}

func TestIRMetrics(t *testing.T) {
	tests := []struct {
		name              string
		candidate         string
		reference         string
		precision, recall float64
		fmeasure          float64
	}{
		{
			name:      "candidate subset",
			candidate: theFoxInputIR,
			reference: theLazyFox,
			precision: 100,
			recall:    600.0 / 7.0,
			fmeasure:  2 * 100 * (600.0 / 7.0) / (100 + 600.0/7.0),
		},
		{
			name:      "stopwords dropped",
			candidate: "der schnelle Fuchs",
			reference: "der braune Fuchs",
			precision: 50,
			recall:    50,
			fmeasure:  50,
		},
		{
			name:      "only stopwords in candidate",
			candidate: "der die das",
			reference: "der Hund",
			precision: 0,
			recall:    0,
			fmeasure:  0,
		},
		{
			name:      "empty reference",
			candidate: "Hund",
			reference: "",
			precision: 0,
			recall:    0,
			fmeasure:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.precision, score(IRPrecision, tt.candidate, tt.reference), 1e-9)
			assert.InDelta(t, tt.recall, score(IRRecall, tt.candidate, tt.reference), 1e-9)
			assert.InDelta(t, tt.fmeasure, score(IRFMeasure, tt.candidate, tt.reference), 1e-9)
		})
	}
}

func TestIRMetrics_UnknownLanguageDisablesFiltering(t *testing.T) {
	m := New(IRPrecision, textproc.NFC, "xyz-not-a-language")
	assert.InDelta(t, 50.0, m.Score("der Fuchs", "der Hund"), 1e-9)
	assert.Equal(t, "xyz-not-a-language", m.Language())
}

func TestIRMetrics_IgnoreConfiguredNormalization(t *testing.T) {
	m := New(IRPrecision, textproc.NFD, textproc.DefaultLanguage)
	assert.Equal(t, 100.0, m.Score("Grüße", "Grüße"))
}

func TestCalculate_MissingReference(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			_, err := New(kind, textproc.NFC, "deu").Calculate("text", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingReference)
		})
	}

	ref := "text"
	got, err := New(Characters, textproc.NFC, "deu").Calculate("text", &ref)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestRefCount(t *testing.T) {
	tests := []struct {
		kind      Kind
		reference string
		want      int
	}{
		{Characters, "Grüße", 5},
		{Letters, "a, b 1", 2},
		{Words, "a b  c", 3},
		{BagOfWords, "a a b", 2},
		{IRRecall, "der Hund der Katze", 2},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.kind, textproc.NFC, "deu").RefCount(tt.reference))
		})
	}
}

func TestMetric_Presentation(t *testing.T) {
	m := New(IRFMeasure, textproc.NFC, "deu")
	assert.Equal(t, "IR-FMeasure", m.Label())
	assert.Equal(t, IRFMeasure, m.Kind())
	assert.Equal(t, 2, m.Precision())
	assert.Equal(t, "95.12", m.Format(95.123))
	assert.Equal(t, "100.00", m.Format(100))
}

func TestParse(t *testing.T) {
	got, err := Parse(" Cs , Letters,FM,Pre,Rec,BoWs,Ws ", textproc.NFKC, "deu")
	require.NoError(t, err)

	var kinds []Kind
	for _, m := range got {
		kinds = append(kinds, m.Kind())
	}
	assert.Equal(t, []Kind{Characters, Letters, IRFMeasure, IRPrecision, IRRecall, BagOfWords, Words}, kinds)
	assert.Equal(t, textproc.NFKC, got[0].norm)
}

func TestParse_Errors(t *testing.T) {
	for _, spec := range []string{"Cs,Nope", "cs", "", " , "} {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec, textproc.NFC, "deu")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownMetric)
			assert.Contains(t, err.Error(), "Characters")
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 16)
	assert.Equal(t, "Cs", names[0])
	assert.Contains(t, names, "IRFMeasure")

	for _, name := range names {
		_, err := Lookup(name)
		assert.NoError(t, err, name)
	}
}
