package usecase

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"docqa/internal/adapter/analyzer"
	"docqa/internal/adapter/vectorspace"
	"docqa/internal/domain"
)

// AnalyzeUseCase answers a question with the most similar document of a collection.
type AnalyzeUseCase struct {
	language  string
	threshold float64
	log       *logrus.Entry
}

// NewAnalyzeUseCase creates the use case. language is a built-in language name or "auto";
// threshold is the score a best match must exceed to be reported as confident.
func NewAnalyzeUseCase(language string, threshold float64, log *logrus.Entry) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		language:  language,
		threshold: threshold,
		log:       log,
	}
}

// Fit prepares documents and fits a vector space over them. The returned analysis has
// no question and no ranking.
func (u *AnalyzeUseCase) Fit(documents []domain.Document) (*domain.Analysis, error) {
	analysis, _, err := u.fit(documents)
	return analysis, err
}

// Analyze fits a vector space over documents and ranks them against question.
// Blank documents are dropped and the rest trimmed before fitting; indexes in the
// result refer to the surviving documents.
func (u *AnalyzeUseCase) Analyze(documents []domain.Document, question string) (*domain.Analysis, error) {
	if len(PrepareDocuments(documents)) > 0 && strings.TrimSpace(question) == "" {
		return nil, domain.ErrEmptyQuery
	}

	analysis, model, err := u.fit(documents)
	if err != nil {
		return nil, err
	}

	ranking, err := model.Rank(question)
	if err != nil {
		return nil, err
	}

	analysis.Question = question
	analysis.Ranking = ranking
	analysis.BestDocument = analysis.Documents[ranking.BestIndex]
	analysis.Confident = ranking.BestScore > u.threshold

	u.log.WithFields(logrus.Fields{
		"analysis_id": analysis.ID,
		"vocabulary":  analysis.Vocabulary.Len(),
		"best_index":  ranking.BestIndex,
		"best_score":  ranking.BestScore,
		"confident":   analysis.Confident,
	}).Debug("analysis complete")

	return analysis, nil
}

func (u *AnalyzeUseCase) fit(documents []domain.Document) (*domain.Analysis, *vectorspace.Model, error) {
	docs := PrepareDocuments(documents)
	if len(docs) == 0 {
		return nil, nil, domain.ErrEmptyDocumentSet
	}

	texts := lo.Map(docs, func(d domain.Document, _ int) string { return d.Text })

	lang, err := analyzer.ResolveLanguage(u.language, texts)
	if err != nil {
		return nil, nil, err
	}

	id := uuid.NewString()
	model, err := vectorspace.NewVectorizer(analyzer.NewNormalizer(lang)).FitTransform(texts)
	if err != nil {
		u.log.WithFields(logrus.Fields{
			"analysis_id": id,
			"language":    lang.Name,
			"documents":   len(docs),
		}).WithError(err).Debug("fit failed")
		return nil, nil, err
	}

	return &domain.Analysis{
		ID:         id,
		Language:   lang.Name,
		Documents:  docs,
		Vocabulary: model.Vocabulary(),
		Matrix:     model.Matrix(),
		Tokens:     lo.Times(len(docs), model.Tokens),
	}, model, nil
}

// Alternatives returns up to k runner-up documents with a positive score, diversified
// with MMR so near-duplicates of already listed documents are skipped.
func Alternatives(a *domain.Analysis, k int, lambda, dedupJaccard float64) []domain.ScoredDocument {
	candidates := lo.Filter(a.Top(0), func(s domain.ScoredDocument, _ int) bool {
		return s.Score > 0
	})
	if len(candidates) == 0 {
		return nil
	}

	picked := vectorspace.NewMMRReranker(lambda, dedupJaccard).
		Rerank(candidates, func(i int) []string { return a.Tokens[i] }, k+1)
	return lo.Filter(picked, func(s domain.ScoredDocument, _ int) bool {
		return s.Index != a.BestIndex
	})
}

// PrepareDocuments trims every document, drops blank ones and renumbers the rest.
func PrepareDocuments(documents []domain.Document) []domain.Document {
	kept := lo.FilterMap(documents, func(d domain.Document, _ int) (domain.Document, bool) {
		d.Text = strings.TrimSpace(d.Text)
		return d, d.Text != ""
	})
	for i := range kept {
		kept[i].Index = i
	}
	return kept
}

// DocumentsFromStrings wraps raw strings as documents in order.
func DocumentsFromStrings(texts []string) []domain.Document {
	return lo.Map(texts, func(t string, i int) domain.Document {
		return domain.Document{Index: i, Text: t}
	})
}
