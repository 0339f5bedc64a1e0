package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVocabulary_SortsAndDedups(t *testing.T) {
	v := NewVocabulary([]string{"perr", "gat", "el", "gat"})

	assert.Equal(t, []string{"el", "gat", "perr"}, v.Terms())
	assert.Equal(t, 3, v.Len())

	i, ok := v.Index("gat")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "gat", v.Term(i))

	_, ok = v.Index("raton")
	assert.False(t, ok)
}

func TestVocabulary_TermsIsACopy(t *testing.T) {
	v := NewVocabulary([]string{"a1", "b2"})
	terms := v.Terms()
	terms[0] = "zz"

	assert.Equal(t, "a1", v.Term(0))
}

func TestRanking_Top(t *testing.T) {
	r := Ranking{Scores: []float64{0.2, 0.7, 0.2, 0}}

	top := r.Top(3)
	assert.Equal(t, []ScoredDocument{
		{Index: 1, Score: 0.7},
		{Index: 0, Score: 0.2},
		{Index: 2, Score: 0.2},
	}, top)

	assert.Len(t, r.Top(0), 4)
	assert.Len(t, r.Top(10), 4)
}

func TestRanking_NoMatch(t *testing.T) {
	assert.True(t, Ranking{Scores: []float64{0, 0}}.NoMatch())
	assert.False(t, Ranking{Scores: []float64{0, 0.3}, BestIndex: 1, BestScore: 0.3}.NoMatch())
}

func TestMatrix_Dims(t *testing.T) {
	m := Matrix{Rows: [][]float64{{1, 0, 0}, {0, 1, 0}}}
	assert.Equal(t, 2, m.NumDocs())
	assert.Equal(t, 3, m.NumTerms())
	assert.Equal(t, 1.0, m.At(1, 1))
	assert.Equal(t, 0, Matrix{}.NumTerms())
}
