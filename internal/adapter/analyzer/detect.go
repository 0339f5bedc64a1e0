package analyzer

import "github.com/abadojack/whatlanggo"

var isoLanguages = map[string]string{
	"es": "spanish",
	"en": "english",
	"fr": "french",
	"ru": "russian",
	"sv": "swedish",
	"nb": "norwegian",
	"hu": "hungarian",
}

// DetectLanguage returns the built-in language name that text is most likely written in,
// or DefaultLanguage when the detected language has no stemmer.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if name, ok := isoLanguages[info.Lang.Iso6391()]; ok {
		return name
	}
	return DefaultLanguage
}
