package textproc

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	precomposed = "the \u00e1 lazy brown fox"
	combined    = "the a\u0301 lazy brown fox"
)

func TestNormalize_Forms(t *testing.T) {
	assert.Equal(t, 4, utf8.RuneCountInString(Normalize("café", NFC)))
	assert.Equal(t, 5, utf8.RuneCountInString(Normalize("café", NFD)))
	assert.Equal(t, Normalize(precomposed, NFC), Normalize(combined, NFC))
	assert.Equal(t, Normalize(precomposed, NFKD), Normalize(combined, NFKD))
	assert.NotEqual(t, precomposed, combined)
	assert.Equal(t, "1⁄2", Normalize("½", NFKC))
	assert.Equal(t, "½", Normalize("½", NFC))
	assert.Equal(t, "Hello World 123", Normalize("Hello World 123", NFKD))
}

func TestParseNormalizationForm(t *testing.T) {
	tests := []struct {
		in   string
		want NormalizationForm
	}{
		{"nfc", NFC},
		{"NFKC", NFKC},
		{"nfd", NFD},
		{" nfkd ", NFKD},
		{"", NFC},
	}
	for _, tt := range tests {
		got, err := ParseNormalizationForm(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := ParseNormalizationForm("nfx")
	assert.Error(t, err)
}

func mustParse(t *testing.T, name string) NormalizationForm {
	t.Helper()
	f, err := ParseNormalizationForm(name)
	require.NoError(t, err)
	return f
}

func TestLetters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation and digits", "Hello, World! 123", "HelloWorld"},
		{"digits inside", "abc123def456", "abcdef"},
		{"accents kept", "Café, naïve!", "Cafénaïve"},
		{"long s", "Neueſte Nachrichten.", "NeueſteNachrichten"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Letters(tt.in, NFC))
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"The", "quick", "brown", "fox"}, Tokenize("The quick brown fox", NFC))
	assert.Equal(t, []string{"Hello,", "world!"}, Tokenize("  Hello,\n\tworld!  ", NFC))
	assert.Empty(t, Tokenize("", NFC))
	assert.Empty(t, Tokenize(" \n\t ", NFC))
}

func TestBagOfWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, BagOfWords("c a b a c", NFC))
	assert.Equal(t, []string{}, BagOfWords("   ", NFC))
}

func TestStopwordsFor(t *testing.T) {
	for _, code := range []string{"deu", "de", "ger", "German", "de-DE"} {
		t.Run(code, func(t *testing.T) {
			s := StopwordsFor(code)
			assert.Greater(t, s.Len(), 30)
			assert.True(t, s.Contains("und"))
			assert.True(t, s.Contains("Und"))
			assert.True(t, s.Contains("DER"))
			assert.False(t, s.Contains("Zeitung"))
		})
	}
}

func TestStopwordsFor_UnknownLanguage(t *testing.T) {
	for _, code := range []string{"xyz-not-a-language", "eng", ""} {
		s := StopwordsFor(code)
		assert.Equal(t, 0, s.Len())
		tokens := []string{"the", "und", "fox"}
		assert.Equal(t, tokens, s.Filter(tokens))
	}
}

func TestStopwords_Filter(t *testing.T) {
	s := StopwordsFor(DefaultLanguage)
	got := s.Filter([]string{"Der", "Hund", "und", "die", "Katze", "sind", "müde"})
	assert.Equal(t, []string{"Hund", "Katze", "müde"}, got)
	assert.Empty(t, s.Filter(nil))
}

func TestToLatin1(t *testing.T) {
	got, ok := ToLatin1("Grüße")
	assert.True(t, ok)
	assert.Equal(t, "Gr\xfc\xdfe", got)

	got, ok = ToLatin1("ſ und €")
	assert.False(t, ok)
	assert.Equal(t, "? und ?", got)
}
