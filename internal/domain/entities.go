package domain

import "sort"

// Document is one entry of the collection, identified by its position.
type Document struct {
	Index  int
	Text   string
	Source string
}

// Vocabulary maps the distinct stems of a fitted collection to matrix columns.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// NewVocabulary builds a vocabulary whose columns follow the sorted order of terms.
// Duplicates are collapsed.
func NewVocabulary(terms []string) Vocabulary {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.Strings(sorted)

	v := Vocabulary{
		terms: make([]string, 0, len(sorted)),
		index: make(map[string]int, len(sorted)),
	}
	for _, t := range sorted {
		if _, exists := v.index[t]; exists {
			continue
		}
		v.index[t] = len(v.terms)
		v.terms = append(v.terms, t)
	}
	return v
}

func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Index returns the column of term.
func (v Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

func (v Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Terms returns a copy of the terms in column order.
func (v Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Matrix is a dense document-by-term weight table.
type Matrix struct {
	Rows [][]float64
}

func (m Matrix) NumDocs() int {
	return len(m.Rows)
}

func (m Matrix) NumTerms() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len(m.Rows[0])
}

// At returns the weight of column t in row d.
func (m Matrix) At(d, t int) float64 {
	return m.Rows[d][t]
}

type ScoredDocument struct {
	Index int
	Score float64
}

// Ranking holds one similarity score per document and the arg-max.
type Ranking struct {
	Scores    []float64
	BestIndex int
	BestScore float64
}

// NoMatch reports whether the query shared no term with any document.
func (r Ranking) NoMatch() bool {
	return r.BestScore == 0
}

// Top returns up to k documents ordered by score, lower index first on ties.
// k <= 0 returns every document.
func (r Ranking) Top(k int) []ScoredDocument {
	out := make([]ScoredDocument, len(r.Scores))
	for i, s := range r.Scores {
		out[i] = ScoredDocument{Index: i, Score: s}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// Analysis is the complete answer to one question over one document collection.
type Analysis struct {
	ID         string
	Language   string
	Question   string
	Documents  []Document
	Vocabulary Vocabulary
	Matrix     Matrix
	Tokens     [][]string
	Ranking

	BestDocument Document
	Confident    bool
}
