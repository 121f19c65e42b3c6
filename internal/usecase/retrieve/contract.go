package retrieve

import (
	"context"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// EvidenceStore runs the hybrid lexical+vector query and returns fused,
// ranked documents.
type EvidenceStore interface {
	Query(ctx context.Context, question string, vector []float32, topK int) ([]domain.ScoredDocument, error)
}

// Embedder vectorizes the question text.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
