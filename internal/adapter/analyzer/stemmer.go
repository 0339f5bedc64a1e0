package analyzer

import (
	"fmt"

	"github.com/kljensen/snowball"
)

// SnowballStemmer stems words with the Snowball algorithm of one language.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer creates a stemmer for a language supported by the snowball package.
func NewSnowballStemmer(language string) (*SnowballStemmer, error) {
	if _, err := snowball.Stem("prueba", language, true); err != nil {
		return nil, fmt.Errorf("snowball %s: %w", language, err)
	}
	return &SnowballStemmer{language: language}, nil
}

// Stem returns the stem of word. Stop words are stemmed like any other word.
func (s *SnowballStemmer) Stem(word string) string {
	stem, err := snowball.Stem(word, s.language, true)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

func (s *SnowballStemmer) Language() string {
	return s.language
}
