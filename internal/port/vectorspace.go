package port

import "docqa/internal/domain"

// VectorSpace is a fitted TF-IDF space that queries can be ranked against.
type VectorSpace interface {
	Vocabulary() domain.Vocabulary

	Matrix() domain.Matrix

	// Rank scores every document of the fitted collection against query.
	Rank(query string) (domain.Ranking, error)
}
