// Package evidence is the retrieval repository over the enforcement-document
// index. A single Query runs one lexical search plus one KNN search per
// embedded body field and fuses the rankings into one list.
package evidence

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/lexdex/internal/db"
	"github.com/kailas-cloud/lexdex/internal/domain"
)

// store is the consumer interface for evidence retrieval (ISP).
type store interface {
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Config holds evidence repository settings.
type Config struct {
	KeyPrefix string // key namespace, e.g. "lexdex:"
	KNearest  int    // candidates fetched per sub-search before fusion
	VectorDim int    // embedding dimensionality for the index schema
}

// Repo implements the evidence store contract used by the hybrid retriever.
type Repo struct {
	store  store
	cfg    Config
	logger *zap.Logger
}

// New creates an evidence repository.
func New(s store, cfg Config, logger *zap.Logger) *Repo {
	return &Repo{store: s, cfg: cfg, logger: logger}
}

func (r *Repo) indexName() string {
	return r.cfg.KeyPrefix + "enforcement:idx"
}

func (r *Repo) docPrefix() string {
	return r.cfg.KeyPrefix + "enforcement:"
}

// returnFields lists the hash fields fetched for every hit. Vectors are
// deliberately excluded; hits carry text and metadata only.
var returnFields = []string{
	"Title", "BrowserFile", "DateIssued", "Published", "DocumentTypes",
	"KeyFacts", "DocumentText", "Commentary",
	"NumberOfViolations", "SettlementAmount",
	"SanctionPrograms", "Industries", "PenaltyTiers", "Characterizations",
	"VoluntaryDisclosure", "EgregiousCase",
}

// Query runs the hybrid search: one lexical sub-search over the question text
// and one KNN sub-search per embedded body field, all in parallel, fused via
// reciprocal rank fusion and cut to topK. A nil or empty vector skips the KNN
// sub-searches and degrades to lexical-only retrieval.
func (r *Repo) Query(
	ctx context.Context, question string, vector []float32, topK int,
) ([]domain.ScoredDocument, error) {
	if topK <= 0 {
		return nil, nil
	}

	k := r.cfg.KNearest
	if k < topK {
		k = topK
	}

	vectorFields := domain.VectorFields()
	rankings := make([][]domain.ScoredDocument, 1+len(vectorFields))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sr, err := r.store.SearchText(gctx, &db.TextQuery{
			Index:        r.indexName(),
			Query:        question,
			TopK:         k,
			ReturnFields: returnFields,
		})
		if err != nil {
			return fmt.Errorf("lexical search: %w", err)
		}
		rankings[0] = r.parseHits(sr)
		return nil
	})

	if len(vector) > 0 {
		for i, field := range vectorFields {
			i, field := i, field
			g.Go(func() error {
				sr, err := r.store.SearchKNN(gctx, &db.KNNQuery{
					Index:        r.indexName(),
					Field:        field,
					Vector:       vector,
					K:            k,
					ReturnFields: returnFields,
				})
				if err != nil {
					return fmt.Errorf("knn search %s: %w", field, err)
				}
				rankings[i+1] = r.parseHits(sr)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEvidenceStoreError, err)
	}

	fused := fuseRRF(rankings, topK)

	r.logger.Debug("Hybrid retrieval finished",
		zap.Int("lexical_hits", len(rankings[0])),
		zap.Int("fused", len(fused)),
		zap.Int("top_k", topK),
	)

	return fused, nil
}

// parseHits converts raw search entries into scored documents.
func (r *Repo) parseHits(sr *db.SearchResult) []domain.ScoredDocument {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	prefix := r.docPrefix()
	hits := make([]domain.ScoredDocument, 0, len(sr.Entries))

	for _, entry := range sr.Entries {
		doc := parseDocumentFields(entry.Fields)
		doc.ID = strings.TrimPrefix(entry.Key, prefix)
		hits = append(hits, domain.ScoredDocument{Document: doc, Score: entry.Score})
	}

	return hits
}

// parseDocumentFields maps flat hash fields onto an EnforcementDocument.
// Unparseable numerics are left at their zero value.
func parseDocumentFields(fields map[string]string) domain.EnforcementDocument {
	doc := domain.EnforcementDocument{
		Title:         fields["Title"],
		BrowserFile:   fields["BrowserFile"],
		DateIssued:    fields["DateIssued"],
		DocumentTypes: fields["DocumentTypes"],
		KeyFacts:      fields["KeyFacts"],
		DocumentText:  fields["DocumentText"],
		Commentary:    fields["Commentary"],

		SanctionPrograms:  splitTags(fields["SanctionPrograms"]),
		Industries:        splitTags(fields["Industries"]),
		PenaltyTiers:      splitTags(fields["PenaltyTiers"]),
		Characterizations: splitTags(fields["Characterizations"]),

		VoluntaryDisclosure: domain.TriState(fields["VoluntaryDisclosure"]),
		EgregiousCase:       domain.TriState(fields["EgregiousCase"]),
	}

	if v, err := strconv.Atoi(fields["NumberOfViolations"]); err == nil {
		doc.NumberOfViolations = v
	}
	if v, err := strconv.ParseFloat(fields["SettlementAmount"], 64); err == nil {
		doc.SettlementAmount = v
	}
	doc.Published = fields["Published"] == "1" || fields["Published"] == "true"

	return doc
}

// splitTags splits a TAG field value on the default separator.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// EnsureIndex creates the enforcement-document index if it does not exist.
// Existing indexes are left untouched, so schema changes require a manual
// FT.DROPINDEX before redeploy.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	name := r.indexName()

	exists, err := r.store.IndexExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check index %s: %w", name, err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:        name,
		StorageType: db.StorageHash,
		Prefixes:    []string{r.docPrefix()},
		Fields:      indexSchema(r.cfg.VectorDim),
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}

	r.logger.Info("Created evidence index", zap.String("index", name))
	return nil
}

// indexSchema defines the enforcement-document index fields: TEXT for the
// searchable bodies, TAG/NUMERIC for metadata, one HNSW VECTOR per body.
func indexSchema(dim int) []db.IndexField {
	fields := []db.IndexField{
		{Name: "Title", Type: db.IndexFieldText},
		{Name: "KeyFacts", Type: db.IndexFieldText},
		{Name: "DocumentText", Type: db.IndexFieldText},
		{Name: "Commentary", Type: db.IndexFieldText},

		{Name: "BrowserFile", Type: db.IndexFieldTag},
		{Name: "DateIssued", Type: db.IndexFieldTag},
		{Name: "Published", Type: db.IndexFieldTag},
		{Name: "DocumentTypes", Type: db.IndexFieldTag},
		{Name: "SanctionPrograms", Type: db.IndexFieldTag},
		{Name: "Industries", Type: db.IndexFieldTag},
		{Name: "PenaltyTiers", Type: db.IndexFieldTag},
		{Name: "Characterizations", Type: db.IndexFieldTag},
		{Name: "VoluntaryDisclosure", Type: db.IndexFieldTag},
		{Name: "EgregiousCase", Type: db.IndexFieldTag},

		{Name: "NumberOfViolations", Type: db.IndexFieldNumeric},
		{Name: "SettlementAmount", Type: db.IndexFieldNumeric},
	}

	for _, vf := range domain.VectorFields() {
		fields = append(fields, db.IndexField{
			Name:              vf,
			Type:              db.IndexFieldVector,
			VectorDim:         dim,
			VectorDistance:    db.DistanceCosine,
			VectorM:           16,
			VectorEFConstruct: 200,
		})
	}

	return fields
}
