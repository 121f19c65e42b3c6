// Package answer synthesizes a grounded, cited answer from ranked evidence.
package answer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// noEvidenceAnswer is returned without a provider call when retrieval found
// nothing; there is nothing to ground an answer in.
const noEvidenceAnswer = "I couldn't find any relevant information to answer your question. " +
	"Please try rephrasing your query or using different search terms."

// failureAnswer is the fail-open text for synthesis provider errors.
const failureAnswer = "I found relevant documents but encountered an error while generating the answer. " +
	"Please review the returned documents directly or try again."

// Completer issues free-text completions.
type Completer interface {
	Complete(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// Config holds synthesis settings.
type Config struct {
	MaxTokens int
}

// Service is the answer synthesizer.
type Service struct {
	completer Completer
	cfg       Config
	logger    *zap.Logger
}

// New creates a synthesis service.
func New(completer Completer, cfg Config, logger *zap.Logger) *Service {
	return &Service{completer: completer, cfg: cfg, logger: logger}
}

// Synthesize produces a grounded answer from the evidence. It always returns
// a non-empty answer string: empty evidence and provider failures both yield
// deterministic fallback text instead of an error.
func (s *Service) Synthesize(ctx context.Context, question string, evidence []domain.Evidence) string {
	if len(evidence) == 0 {
		return noEvidenceAnswer
	}

	answer, err := s.completer.Complete(ctx, domain.CompletionRequest{
		System:    systemPrompt,
		User:      buildUserPrompt(question, evidence),
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		s.logger.Warn("Answer synthesis failed, returning fallback answer",
			zap.Error(err),
		)
		return failureAnswer
	}
	if strings.TrimSpace(answer) == "" {
		return failureAnswer
	}

	return answer
}

// buildUserPrompt numbers the evidence for the provider. The numbering is a
// transport detail only; the prompt forbids citing by number.
func buildUserPrompt(question string, evidence []domain.Evidence) string {
	var b strings.Builder

	b.WriteString("Create a comprehensive answer to the user's question using these search results.\n\n")
	fmt.Fprintf(&b, "User Question: %s\n\nSearch Results:\n", question)

	for i, e := range evidence {
		fmt.Fprintf(&b, "DOCUMENT %d:\n%s\n", i+1, e.Content)
	}

	b.WriteString("\nSynthesize these results into a clear, complete answer. " +
		"Remember to cite which documents contain the information you're referencing.")

	return b.String()
}
