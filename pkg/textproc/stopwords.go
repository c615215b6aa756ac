package textproc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLanguage is the ISO 639-2 code used when none is configured
const DefaultLanguage = "deu"

// languageAliases covers names that are not BCP 47 / ISO 639 codes
var languageAliases = map[string]string{
	"german":  "de",
	"ger":     "de",
	"english": "en",
}

// germanStopwords holds lowercase German function words
var germanStopwords = []string{
	"aber", "alle", "allem", "allen", "aller", "alles", "als", "also", "am", "an",
	"ander", "andere", "anderem", "anderen", "anderer", "anderes", "auch", "auf", "aus",
	"bei", "bin", "bis", "bist", "da", "damit", "dann", "das", "dass", "daß", "dein",
	"deine", "dem", "den", "denn", "der", "des", "dessen", "dich", "die", "dies",
	"diese", "diesem", "diesen", "dieser", "dieses", "dir", "doch", "dort", "du",
	"durch", "ein", "eine", "einem", "einen", "einer", "eines", "er", "es", "etwas",
	"für", "gegen", "hab", "habe", "haben", "hat", "hatte", "hatten", "hier", "hin",
	"ich", "ihm", "ihn", "ihnen", "ihr", "ihre", "im", "in", "ist", "jede", "jedem",
	"jeden", "jeder", "jedes", "kein", "keine", "man", "mein", "meine", "mich", "mir",
	"mit", "nach", "nicht", "noch", "nun", "nur", "ob", "oder", "ohne", "sehr", "sein",
	"seine", "sich", "sie", "sind", "so", "über", "um", "und", "uns", "unter", "vom",
	"von", "vor", "war", "waren", "was", "weil", "welche", "wenn", "werden", "wie",
	"wieder", "will", "wir", "wird", "wo", "zu", "zum", "zur", "zwar", "zwischen",
}

var stopwordLists = map[language.Base][]string{
	language.MustParseBase("de"): germanStopwords,
}

// Stopwords is an immutable, language keyed stopword list.
// Unknown languages yield an empty list, so filtering is a no-op.
type Stopwords struct {
	tag   language.Tag
	words map[string]struct{}
}

// StopwordsFor resolves an ISO 639-1/639-2 code (deu, ger, de) or an
// English language name and returns its stopword list.
func StopwordsFor(code string) Stopwords {
	tag := resolveLanguage(code)
	s := Stopwords{tag: tag, words: make(map[string]struct{})}
	if tag == language.Und {
		return s
	}
	base, _ := tag.Base()
	for _, w := range stopwordLists[base] {
		s.words[w] = struct{}{}
	}
	return s
}

func resolveLanguage(code string) language.Tag {
	code = strings.ToLower(strings.TrimSpace(code))
	if alias, ok := languageAliases[code]; ok {
		code = alias
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und
	}
	return tag
}

// Language returns the resolved language tag
func (s Stopwords) Language() language.Tag { return s.tag }

// Len returns the number of stopwords
func (s Stopwords) Len() int { return len(s.words) }

// Contains compares the lowercased token against the list.
func (s Stopwords) Contains(token string) bool {
	if len(s.words) == 0 {
		return false
	}
	_, ok := s.words[cases.Lower(s.tag).String(token)]
	return ok
}

// Filter drops every token whose lowercase form is a stopword.
func (s Stopwords) Filter(tokens []string) []string {
	if len(s.words) == 0 {
		return append([]string(nil), tokens...)
	}
	// a Caser keeps state, so each call gets its own
	lower := cases.Lower(s.tag)
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := s.words[lower.String(token)]; !ok {
			kept = append(kept, token)
		}
	}
	return kept
}
