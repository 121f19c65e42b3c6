package extract

import (
	"context"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// Completer issues schema-constrained completions.
type Completer interface {
	CompleteStructured(ctx context.Context, req domain.CompletionRequest, schemaName string, out any) error
}

// FacetDictionary resolves display-form facet values to canonical IDs.
// Lookup is total: unresolvable values come back as a tagged sentinel.
type FacetDictionary interface {
	Lookup(ctx context.Context, facet, value string) string
}
