// Package orchestrate composes classification, extraction, retrieval and
// synthesis into one request pipeline with a single unified response shape.
package orchestrate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// Deterministic branch texts. These are part of the external contract:
// every branch always yields a non-empty answer.
const (
	clarificationMessage = "I need more information to help you effectively."

	statisticalMessage = "Statistical and aggregate queries are not yet supported. This feature is coming soon!"
	statisticalSuggest = "Try rephrasing your question to search for specific documents or cases instead."
	statisticalAnswer  = "I apologize, but I cannot process statistical queries yet. This feature is under development. " +
		"Please try asking about specific documents, cases, or legal concepts instead."

	extractionFailedMessage = "Search parameter extraction failed."
	extractionFailedAnswer  = "I wasn't able to convert your question into structured search parameters. " +
		"Please try rephrasing your query."

	errorMessage = "An error occurred while processing your query."
	errorAnswer  = "I apologize, but I encountered an error while processing your question. " +
		"Please try rephrasing your query."
)

// Service is the orchestrator: the single entry point for question processing.
type Service struct {
	classifier  Classifier
	extractor   Extractor
	retriever   Retriever
	synthesizer Synthesizer
	logger      *zap.Logger
}

// New creates an orchestration service.
func New(
	classifier Classifier,
	extractor Extractor,
	retriever Retriever,
	synthesizer Synthesizer,
	logger *zap.Logger,
) *Service {
	return &Service{
		classifier:  classifier,
		extractor:   extractor,
		retriever:   retriever,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// Process classifies the question and dispatches to the matching branch.
// The only error it returns is ErrEmptyQuestion; every other failure is
// normalized into a well-formed response. Each branch runs exactly once.
func (s *Service) Process(ctx context.Context, question string) (*domain.Response, error) {
	if strings.TrimSpace(question) == "" {
		return nil, domain.ErrEmptyQuestion
	}

	classification := s.classifier.Classify(ctx, question)

	resp := s.dispatch(ctx, question, classification)
	if resp.Documents == nil {
		resp.Documents = []domain.Evidence{}
	}
	return resp, nil
}

// dispatch routes to the branch for the classified tag. Panics escaping a
// branch are converted into the uniform error response here; this is the
// single recovery boundary of the pipeline.
func (s *Service) dispatch(
	ctx context.Context, question string, c domain.QueryClassification,
) (resp *domain.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic during query processing",
				zap.String("query_type", string(c.QueryType)),
				zap.Any("panic", r),
			)
			resp = s.errorResponse(question, fmt.Sprintf("internal error: %v", r))
		}
	}()

	switch c.QueryType {
	case domain.QueryClarification:
		return s.clarificationBranch(question, c)
	case domain.QueryKeywordSearch:
		return s.keywordBranch(ctx, question, c)
	case domain.QueryStatistical:
		return s.statisticalBranch(question, c)
	case domain.QueryDocumentSearch:
		return s.documentBranch(ctx, question, c)
	default:
		// Unrecognized tags fall back to document search, never to an error.
		s.logger.Warn("Unknown classification tag, defaulting to document search",
			zap.String("query_type", string(c.QueryType)),
		)
		return s.documentBranch(ctx, question, c)
	}
}

func (s *Service) clarificationBranch(
	question string, c domain.QueryClassification,
) *domain.Response {
	return &domain.Response{
		Question:              question,
		QueryType:             domain.QueryClarification,
		Classification:        &c,
		ClarificationQuestion: c.ClarificationQuestion,
		Message:               clarificationMessage,
		Answer: "I need clarification to provide the best results. " +
			c.ClarificationQuestion,
	}
}

// keywordBranch extracts structured parameters. The parameters are the
// deliverable; no store query runs here. An extraction failure degrades to a
// deterministic failure response instead of the error path.
func (s *Service) keywordBranch(
	ctx context.Context, question string, c domain.QueryClassification,
) *domain.Response {
	params, err := s.extractor.Extract(ctx, question)
	if err != nil {
		s.logger.Warn("Filter extraction failed", zap.Error(err))
		return &domain.Response{
			Question:       question,
			QueryType:      domain.QueryKeywordSearch,
			Classification: &c,
			Message:        extractionFailedMessage,
			Answer:         extractionFailedAnswer,
		}
	}

	return &domain.Response{
		Question:         question,
		QueryType:        domain.QueryKeywordSearch,
		Classification:   &c,
		SearchParameters: params,
		Answer: "I've processed your query into structured search parameters. " +
			"The system would search for documents matching these criteria: " +
			formatParameters(params),
	}
}

func (s *Service) documentBranch(
	ctx context.Context, question string, c domain.QueryClassification,
) *domain.Response {
	evidence, err := s.retriever.Retrieve(ctx, question)
	if err != nil {
		s.logger.Error("Evidence retrieval failed", zap.Error(err))
		return s.errorResponse(question, "evidence retrieval failed")
	}

	answer := s.synthesizer.Synthesize(ctx, question, evidence)

	return &domain.Response{
		Question:       question,
		QueryType:      domain.QueryDocumentSearch,
		Classification: &c,
		Documents:      evidence,
		Answer:         answer,
	}
}

func (s *Service) statisticalBranch(
	question string, c domain.QueryClassification,
) *domain.Response {
	return &domain.Response{
		Question:             question,
		QueryType:            domain.QueryStatistical,
		Classification:       &c,
		Status:               domain.StatusNotImplemented,
		Message:              statisticalMessage,
		SuggestedAlternative: statisticalSuggest,
		Answer:               statisticalAnswer,
	}
}

// errorResponse is the uniform terminal shape for unrecoverable failures.
// The error string is safe for callers; provider internals stay in the logs.
func (s *Service) errorResponse(question, safeErr string) *domain.Response {
	return &domain.Response{
		Question:  question,
		QueryType: domain.QueryError,
		Error:     safeErr,
		Message:   errorMessage,
		Answer:    errorAnswer,
	}
}

// formatParameters renders the extracted parameters for the answer text.
func formatParameters(params *domain.SearchParameters) string {
	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return "(unavailable)"
	}
	return string(data)
}
