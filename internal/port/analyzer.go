package port

// Stemmer reduces a word to its stem. Implementations must be pure.
type Stemmer interface {
	Stem(word string) string
}

// Normalizer turns raw text into an ordered sequence of stems.
type Normalizer interface {
	Normalize(text string) []string
}
