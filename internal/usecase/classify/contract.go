package classify

import (
	"context"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// Completer issues schema-constrained completions.
type Completer interface {
	CompleteStructured(ctx context.Context, req domain.CompletionRequest, schemaName string, out any) error
}
