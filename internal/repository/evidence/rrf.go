package evidence

import (
	"sort"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// rrfK is the Reciprocal Rank Fusion constant (standard value from Cormack et al. 2009).
const rrfK = 60

// fuseRRF merges any number of rankings via Reciprocal Rank Fusion.
// score(d) = sum of 1/(k + rank_i(d)) for each ranking where d appears.
// When a document appears in several rankings, the first-seen parse is kept.
// Ties break on document ID so the output is deterministic.
func fuseRRF(rankings [][]domain.ScoredDocument, topK int) []domain.ScoredDocument {
	type scored struct {
		doc   domain.EnforcementDocument
		score float64
	}

	merged := make(map[string]*scored)

	for _, ranking := range rankings {
		for rank, hit := range ranking {
			s := 1.0 / float64(rrfK+rank+1)
			if existing, ok := merged[hit.Document.ID]; ok {
				existing.score += s
			} else {
				merged[hit.Document.ID] = &scored{doc: hit.Document, score: s}
			}
		}
	}

	results := make([]domain.ScoredDocument, 0, len(merged))
	for _, s := range merged {
		results = append(results, domain.ScoredDocument{Document: s.doc, Score: s.score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.ID < results[j].Document.ID
	})

	if len(results) > topK {
		results = results[:topK]
	}

	return results
}
