// Package extract turns keyword-style questions into structured search
// parameters for the lexical search path.
package extract

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

const schemaName = "search_parameters"

// Service is the structured-filter extractor.
type Service struct {
	completer Completer
	facets    FacetDictionary
	logger    *zap.Logger
}

// New creates an extraction service.
func New(completer Completer, facets FacetDictionary, logger *zap.Logger) *Service {
	return &Service{completer: completer, facets: facets, logger: logger}
}

// Extract issues one schema-constrained completion, fills facet defaults and
// maps every facet value to its canonical ID. Unlike classification this is
// not fail-open: the caller gets a typed error and degrades the branch.
func (s *Service) Extract(ctx context.Context, question string) (*domain.SearchParameters, error) {
	var params domain.SearchParameters

	err := s.completer.CompleteStructured(ctx, domain.CompletionRequest{
		System: systemPrompt,
		User:   question,
	}, schemaName, &params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	params.EnsureDefaults()
	params.MapFacets(func(facet, value string) string {
		return s.facets.Lookup(ctx, facet, value)
	})

	s.logger.Debug("Search parameters extracted",
		zap.Any("programs", params.Program),
		zap.Any("document_types", params.DocumentType),
		zap.String("key_words", params.KeyWords),
	)

	return &params, nil
}
