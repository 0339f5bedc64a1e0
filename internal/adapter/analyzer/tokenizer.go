package analyzer

import (
	"strings"
	"unicode/utf8"
)

// Normalizer lowercases text, strips everything outside the language alphabet and
// stems the remaining words.
type Normalizer struct {
	lang Language
}

// NewNormalizer creates a Normalizer for lang.
func NewNormalizer(lang Language) *Normalizer {
	return &Normalizer{lang: lang}
}

func (n *Normalizer) Language() string {
	return n.lang.Name
}

// Normalize returns the stems of text in order of appearance.
func (n *Normalizer) Normalize(text string) []string {
	words := splitWords(n.lang, text)
	stems := make([]string, 0, len(words))

	for _, word := range words {
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		stems = append(stems, n.lang.stemmer.Stem(word))
	}

	return stems
}

// splitWords lowercases text, blanks out runes outside the alphabet and splits on whitespace.
func splitWords(lang Language, text string) []string {
	text = strings.ToLower(text)
	text = lang.reject.ReplaceAllString(text, " ")
	return strings.Fields(text)
}
