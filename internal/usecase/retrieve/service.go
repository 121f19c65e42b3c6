// Package retrieve is the hybrid retriever: it embeds the question, queries
// the evidence store and assembles ranked, labeled evidence for synthesis.
package retrieve

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

// Config holds retrieval settings.
type Config struct {
	TopK      int // final fused result budget
	VectorDim int // embedding dimensionality, for the zero-vector fallback
}

// Service is the hybrid retriever.
type Service struct {
	store  EvidenceStore
	embed  Embedder
	cfg    Config
	logger *zap.Logger
}

// New creates a retrieval service.
func New(store EvidenceStore, embed Embedder, cfg Config, logger *zap.Logger) *Service {
	return &Service{store: store, embed: embed, cfg: cfg, logger: logger}
}

// Retrieve embeds the question once and runs the hybrid store query. An
// embedding failure degrades to the zero vector: vector ranking becomes
// near-random but lexical retrieval still works, so the request survives.
func (s *Service) Retrieve(ctx context.Context, question string) ([]domain.Evidence, error) {
	vector := s.embedQuestion(ctx, question)

	docs, err := s.store.Query(ctx, question, vector, s.cfg.TopK)
	if err != nil {
		return nil, fmt.Errorf("query evidence store: %w", err)
	}

	evidence := make([]domain.Evidence, 0, len(docs))
	for _, d := range docs {
		evidence = append(evidence, toEvidence(d))
	}

	s.logger.Debug("Evidence retrieved",
		zap.Int("documents", len(evidence)),
		zap.Int("top_k", s.cfg.TopK),
	)

	return evidence, nil
}

func (s *Service) embedQuestion(ctx context.Context, question string) []float32 {
	result, err := s.embed.Embed(ctx, question)
	if err != nil {
		s.logger.Warn("Question embedding failed, degrading to zero vector",
			zap.Error(err),
		)
		return domain.ZeroVector(s.cfg.VectorDim)
	}
	return result.Embedding
}

// toEvidence converts a scored document into the synthesizer-facing evidence
// shape, with the labeled content assembly the citation rules depend on.
func toEvidence(d domain.ScoredDocument) domain.Evidence {
	doc := d.Document
	return domain.Evidence{
		ID:               doc.ID,
		Content:          assembleContent(doc),
		Title:            doc.Title,
		BrowserFile:      doc.BrowserFile,
		DateIssued:       doc.DateIssued,
		DocumentTypes:    doc.DocumentTypes,
		SettlementAmount: formatAmount(doc.SettlementAmount),
		SanctionPrograms: strings.Join(doc.SanctionPrograms, ", "),
		Industries:       strings.Join(doc.Industries, ", "),
		Score:            d.Score,
	}
}

// assembleContent concatenates the document's text bodies with explicit
// labeled delimiters. Empty sections are omitted entirely; the labels must
// stay stable because the synthesis prompt refers to them by name.
func assembleContent(doc domain.EnforcementDocument) string {
	var parts []string

	if doc.Title != "" {
		parts = append(parts, section("TITLE", doc.Title))
	}
	if doc.KeyFacts != "" {
		parts = append(parts, section("KEY FACTS", doc.KeyFacts))
	}
	if doc.DocumentText != "" {
		parts = append(parts, section("DOCUMENT TEXT", doc.DocumentText))
	}
	if doc.Commentary != "" {
		parts = append(parts, section("COMMENTARY", doc.Commentary))
	}

	return strings.Join(parts, "\n\n")
}

func section(label, body string) string {
	return fmt.Sprintf("=== %s ===\n%s\n=== END %s ===", label, body, label)
}

func formatAmount(amount float64) string {
	if amount == 0 {
		return ""
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
