package domain

import "errors"

var (
	// ErrEmptyQuestion signals an empty or whitespace-only question.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrExtractionFailed signals that the filter extractor could not produce parameters.
	ErrExtractionFailed = errors.New("filter extraction failed")
	// ErrCompletionProviderError signals a completion provider failure,
	// including responses that fail schema validation.
	ErrCompletionProviderError = errors.New("completion provider error")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrEvidenceStoreError signals an evidence store failure.
	ErrEvidenceStoreError = errors.New("evidence store error")
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
)
