package domain

import "errors"

var (
	ErrEmptyDocumentSet = errors.New("no documents to analyze")
	ErrEmptyVocabulary  = errors.New("documents contain no indexable words")
	ErrEmptyQuery       = errors.New("question is empty")
	ErrUnknownLanguage  = errors.New("unknown stemming language")
)
