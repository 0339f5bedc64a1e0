package vectorspace

import (
	"docqa/internal/domain"
)

// MMRReranker implements Maximal Marginal Relevance to pick alternative answers that do
// not repeat each other.
type MMRReranker struct {
	lambda       float64
	dedupJaccard float64
}

// NewMMRReranker creates a new MMR reranker.
func NewMMRReranker(lambda, dedupJaccard float64) *MMRReranker {
	return &MMRReranker{
		lambda:       lambda,
		dedupJaccard: dedupJaccard,
	}
}

// Rerank selects up to k candidates.
// MMR(c) = λ * relevance(c) - (1-λ) * max_similarity(c, selected)
// where similarity is the Jaccard overlap of the documents' stems.
func (r *MMRReranker) Rerank(candidates []domain.ScoredDocument, tokens func(index int) []string, k int) []domain.ScoredDocument {
	if len(candidates) == 0 {
		return nil
	}

	if k > len(candidates) {
		k = len(candidates)
	}

	// Normalize scores to [0, 1] for fair comparison
	maxScore := candidates[0].Score
	for _, c := range candidates {
		if c.Score > maxScore {
			maxScore = c.Score
		}
	}
	if maxScore == 0 {
		maxScore = 1
	}

	selected := make([]domain.ScoredDocument, 0, k)
	remaining := make([]domain.ScoredDocument, len(candidates))
	copy(remaining, candidates)

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := -1
		bestMMR := -1e9

		for i, candidate := range remaining {
			relevance := candidate.Score / maxScore

			maxSim := 0.0
			for _, sel := range selected {
				sim := jaccardSimilarity(tokens(candidate.Index), tokens(sel.Index))
				if sim > maxSim {
					maxSim = sim
				}
			}

			if maxSim > r.dedupJaccard {
				continue
			}

			mmr := r.lambda*relevance - (1-r.lambda)*maxSim
			if mmr > bestMMR {
				bestMMR = mmr
				bestIdx = i
			}
		}

		if bestIdx == -1 {
			// everything left duplicates a selected document
			break
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

// jaccardSimilarity computes the Jaccard similarity between two token sets.
func jaccardSimilarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[t] = struct{}{}
	}

	setB := make(map[string]struct{}, len(b))
	for _, t := range b {
		setB[t] = struct{}{}
	}

	intersection := 0
	for t := range setA {
		if _, exists := setB[t]; exists {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
