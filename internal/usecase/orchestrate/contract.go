package orchestrate

import (
	"context"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// Classifier assigns a routing tag to a question. Fail-open: never errors.
type Classifier interface {
	Classify(ctx context.Context, question string) domain.QueryClassification
}

// Extractor turns a keyword-style question into structured search parameters.
type Extractor interface {
	Extract(ctx context.Context, question string) (*domain.SearchParameters, error)
}

// Retriever runs hybrid retrieval and returns ranked evidence.
type Retriever interface {
	Retrieve(ctx context.Context, question string) ([]domain.Evidence, error)
}

// Synthesizer produces a grounded answer. Fail-open: always returns text.
type Synthesizer interface {
	Synthesize(ctx context.Context, question string, evidence []domain.Evidence) string
}
