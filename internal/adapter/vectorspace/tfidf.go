package vectorspace

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"docqa/internal/domain"
	"docqa/internal/port"
)

// Vectorizer fits TF-IDF vector spaces over document collections.
type Vectorizer struct {
	normalizer port.Normalizer
}

// NewVectorizer creates a Vectorizer that tokenizes with normalizer.
func NewVectorizer(normalizer port.Normalizer) *Vectorizer {
	return &Vectorizer{normalizer: normalizer}
}

var _ port.VectorSpace = (*Model)(nil)

// Model is a fitted vector space. It is never modified after FitTransform returns.
type Model struct {
	normalizer port.Normalizer
	vocab      domain.Vocabulary
	idf        []float64
	matrix     domain.Matrix
	tokens     [][]string
}

// FitTransform learns the vocabulary and IDF weights of documents and returns the
// L2-normalized TF-IDF row of every document, in input order.
//
// idf(t) = ln((1+n)/(1+df(t))) + 1, so a term present in every document keeps weight 1.
func (v *Vectorizer) FitTransform(documents []string) (*Model, error) {
	if len(documents) == 0 {
		return nil, domain.ErrEmptyDocumentSet
	}

	tokens := make([][]string, len(documents))
	df := make(map[string]int)
	for i, doc := range documents {
		tokens[i] = v.normalizer.Normalize(doc)
		for _, term := range lo.Uniq(tokens[i]) {
			df[term]++
		}
	}

	if len(df) == 0 {
		return nil, domain.ErrEmptyVocabulary
	}

	vocab := domain.NewVocabulary(lo.Keys(df))
	n := float64(len(documents))
	idf := make([]float64, vocab.Len())
	for i := range idf {
		idf[i] = math.Log((1+n)/(1+float64(df[vocab.Term(i)]))) + 1
	}

	m := &Model{
		normalizer: v.normalizer,
		vocab:      vocab,
		idf:        idf,
		tokens:     tokens,
	}

	rows := make([][]float64, len(documents))
	for i, toks := range tokens {
		rows[i] = m.weigh(toks)
	}
	m.matrix = domain.Matrix{Rows: rows}

	return m, nil
}

func (m *Model) Vocabulary() domain.Vocabulary {
	return m.vocab
}

func (m *Model) Matrix() domain.Matrix {
	return m.matrix
}

// IDF returns a copy of the per-column inverse document frequencies.
func (m *Model) IDF() []float64 {
	out := make([]float64, len(m.idf))
	copy(out, m.idf)
	return out
}

// Tokens returns the stems of document i as seen at fit time.
func (m *Model) Tokens(i int) []string {
	return m.tokens[i]
}

// Transform projects text into the fitted space. Stems outside the vocabulary are ignored.
func (m *Model) Transform(text string) []float64 {
	return m.weigh(m.normalizer.Normalize(text))
}

// Rank scores every document against query by cosine similarity. The best index is the
// first document holding the maximum score, so a query sharing no term with the collection
// ranks document 0 first with score 0.
func (m *Model) Rank(query string) (domain.Ranking, error) {
	if strings.TrimSpace(query) == "" {
		return domain.Ranking{}, domain.ErrEmptyQuery
	}

	q := m.Transform(query)
	scores := make([]float64, m.matrix.NumDocs())
	best := 0
	for d, row := range m.matrix.Rows {
		scores[d] = clamp01(dot(q, row))
		if scores[d] > scores[best] {
			best = d
		}
	}

	return domain.Ranking{
		Scores:    scores,
		BestIndex: best,
		BestScore: scores[best],
	}, nil
}

// weigh turns stems into an L2-normalized TF-IDF vector over the vocabulary columns.
func (m *Model) weigh(stems []string) []float64 {
	vec := make([]float64, m.vocab.Len())
	for _, s := range stems {
		if col, ok := m.vocab.Index(s); ok {
			vec[col]++
		}
	}
	for col := range vec {
		vec[col] *= m.idf[col]
	}
	normalize(vec)
	return vec
}

// normalize scales vec to unit length in place. The zero vector is left alone.
func normalize(vec []float64) {
	norm := Norm(vec)
	if norm == 0 {
		return
	}
	for i := range vec {
		vec[i] /= norm
	}
}

// Norm returns the Euclidean length of vec.
func Norm(vec []float64) float64 {
	return math.Sqrt(lo.SumBy(vec, func(x float64) float64 { return x * x }))
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
