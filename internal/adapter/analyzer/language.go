package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"docqa/internal/domain"
	"docqa/internal/port"
)

const (
	LanguageAuto    = "auto"
	DefaultLanguage = "spanish"
)

// Language pairs an alphabet filter with the stemmer for words written in it.
type Language struct {
	Name    string
	reject  *regexp.Regexp
	stemmer port.Stemmer
}

// NewLanguage builds a language from the lowercase letters of its alphabet, written as
// the body of a regexp character class, and a stemmer.
func NewLanguage(name, letters string, stemmer port.Stemmer) (Language, error) {
	reject, err := regexp.Compile(`[^` + letters + `\s]`)
	if err != nil {
		return Language{}, fmt.Errorf("alphabet for %s: %w", name, err)
	}
	return Language{Name: name, reject: reject, stemmer: stemmer}, nil
}

func (l Language) Stemmer() port.Stemmer {
	return l.stemmer
}

var alphabets = map[string]string{
	"spanish":   `a-záéíóúüñ`,
	"english":   `a-z`,
	"french":    `a-zàâæçéèêëîïôœùûüÿ`,
	"russian":   `а-яё`,
	"swedish":   `a-zåäöé`,
	"norwegian": `a-zæøåéèêóòâô`,
	"hungarian": `a-záéíóöőúüű`,
}

// Languages returns the names of the built-in languages, sorted.
func Languages() []string {
	names := make([]string, 0, len(alphabets))
	for name := range alphabets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupLanguage returns the built-in language called name.
func LookupLanguage(name string) (Language, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	letters, ok := alphabets[name]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q (supported: %s)",
			domain.ErrUnknownLanguage, name, strings.Join(Languages(), ", "))
	}
	stemmer, err := NewSnowballStemmer(name)
	if err != nil {
		return Language{}, err
	}
	return NewLanguage(name, letters, stemmer)
}

// ResolveLanguage looks up name, or detects the language of samples when name is "auto".
func ResolveLanguage(name string, samples []string) (Language, error) {
	if strings.EqualFold(strings.TrimSpace(name), LanguageAuto) {
		return LookupLanguage(DetectLanguage(strings.Join(samples, "\n")))
	}
	return LookupLanguage(name)
}
