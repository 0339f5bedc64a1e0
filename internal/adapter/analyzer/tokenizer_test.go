package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spanishNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	lang, err := LookupLanguage("spanish")
	require.NoError(t, err)
	return NewNormalizer(lang)
}

func TestNormalizer_Normalize_Spanish(t *testing.T) {
	n := spanishNormalizer(t)

	stems := n.Normalize("¿Dónde juegan el perro y el gato?")
	assert.Equal(t, []string{"dond", "jueg", "el", "perr", "el", "gat"}, stems)
}

func TestNormalizer_DropsSingleLetters(t *testing.T) {
	n := spanishNormalizer(t)

	stems := n.Normalize("y a o perro")
	assert.Equal(t, []string{"perr"}, stems)
}

func TestNormalizer_PunctuationAndDigitsSplitWords(t *testing.T) {
	n := spanishNormalizer(t)

	stems := n.Normalize("perro,gato 123 !!! gato42perro")
	assert.Equal(t, []string{"perr", "gat", "gat", "perr"}, stems)
}

func TestNormalizer_LowercasesAccentedCapitals(t *testing.T) {
	n := spanishNormalizer(t)

	assert.Equal(t, n.Normalize("ÁRBOL Niño"), n.Normalize("árbol niño"))
	assert.NotEmpty(t, n.Normalize("ÑANDÚ"))
}

func TestNormalizer_SameWordSameStem(t *testing.T) {
	n := spanishNormalizer(t)

	first := n.Normalize("El perro ladra fuerte en el parque.")
	second := n.Normalize("El perro y el gato juegan juntos en el jardín.")
	assert.Equal(t, first[1], second[1])
	assert.Equal(t, "perr", first[1])

	assert.Equal(t, n.Normalize("perros"), n.Normalize("perro"))
}

func TestNormalizer_EmptyInput(t *testing.T) {
	n := spanishNormalizer(t)

	assert.Empty(t, n.Normalize(""))
	assert.Empty(t, n.Normalize("   \t\n"))
	assert.Empty(t, n.Normalize("123 !!! ?"))
}

func TestNormalizer_English(t *testing.T) {
	lang, err := LookupLanguage("english")
	require.NoError(t, err)
	n := NewNormalizer(lang)

	stems := n.Normalize("Running dogs jumped")
	assert.Equal(t, []string{"run", "dog", "jump"}, stems)
	assert.Equal(t, "english", n.Language())
}

func TestNormalizer_EnglishAlphabetDropsAccents(t *testing.T) {
	lang, err := LookupLanguage("english")
	require.NoError(t, err)
	n := NewNormalizer(lang)

	assert.Equal(t, []string{"caf"}, n.Normalize("café"))
}

type upperStemmer struct{}

func (upperStemmer) Stem(word string) string { return "<" + word + ">" }

func TestNormalizer_CustomLanguage(t *testing.T) {
	lang, err := NewLanguage("abc", `abc`, upperStemmer{})
	require.NoError(t, err)
	n := NewNormalizer(lang)

	assert.Equal(t, []string{"<ab>", "<cab>"}, n.Normalize("ab d cab xyz a"))
}

func TestSplitWords(t *testing.T) {
	lang, err := LookupLanguage("spanish")
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected int
	}{
		{"hola mundo", 2},
		{"hola_mundo", 2},
		{"hola-mundo", 2},
		{"¿qué?¡sí!", 2},
		{"123números456", 1},
		{"", 0},
	}

	for _, tt := range tests {
		words := splitWords(lang, tt.input)
		assert.Len(t, words, tt.expected, "splitWords(%q) = %v", tt.input, words)
	}
}
