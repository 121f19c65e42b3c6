// Package classify decides which retrieval strategy a question needs.
package classify

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
	"github.com/kailas-cloud/lexdex/internal/metrics"
)

const schemaName = "query_classification"

// defaultClarification is used when the provider tags a question as needing
// clarification but omits the question itself.
const defaultClarification = "Could you provide more detail about what you are looking for?"

// Service classifies questions into routing tags. Classification is
// fail-open: a provider failure yields the document-search fallback verdict
// instead of an error, so a broken classifier never blocks retrieval.
type Service struct {
	completer Completer
	logger    *zap.Logger
}

// New creates a classification service.
func New(completer Completer, logger *zap.Logger) *Service {
	return &Service{completer: completer, logger: logger}
}

// Classify issues one schema-constrained completion and normalizes the
// verdict. It never returns an error; see the fallback contract above.
func (s *Service) Classify(ctx context.Context, question string) domain.QueryClassification {
	var verdict domain.QueryClassification

	err := s.completer.CompleteStructured(ctx, domain.CompletionRequest{
		System: systemPrompt,
		User:   "Classify this query: " + question,
	}, schemaName, &verdict)
	if err != nil {
		s.logger.Warn("Classification failed, falling back to document search",
			zap.Error(err),
		)
		fallback := fallbackClassification()
		s.record(fallback.QueryType, true)
		return fallback
	}

	verdict = normalize(verdict)
	s.record(verdict.QueryType, false)

	s.logger.Debug("Query classified",
		zap.String("query_type", string(verdict.QueryType)),
		zap.Float64("confidence", verdict.Confidence),
		zap.String("reasoning", verdict.Reasoning),
	)

	return verdict
}

func (s *Service) record(tag domain.QueryType, fallback bool) {
	metrics.QueryClassificationsTotal.
		WithLabelValues(string(tag), strconv.FormatBool(fallback)).Inc()
}

// fallbackClassification is the fail-open verdict for provider failures.
func fallbackClassification() domain.QueryClassification {
	return domain.QueryClassification{
		QueryType:  domain.QueryDocumentSearch,
		Confidence: 0.5,
		Reasoning:  "Classification failed, defaulting to document search",
	}
}

// normalize clamps confidence into [0,1] and enforces the clarification
// invariant: the clarification question is populated iff the tag asks for it.
func normalize(v domain.QueryClassification) domain.QueryClassification {
	if v.Confidence < 0 {
		v.Confidence = 0
	}
	if v.Confidence > 1 {
		v.Confidence = 1
	}

	if v.QueryType == domain.QueryClarification {
		if v.ClarificationQuestion == "" {
			v.ClarificationQuestion = defaultClarification
		}
	} else {
		v.ClarificationQuestion = ""
	}

	return v
}
