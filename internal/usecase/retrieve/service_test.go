package retrieve

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

type mockStore struct {
	docs       []domain.ScoredDocument
	err        error
	lastVector []float32
	lastTopK   int
}

func (m *mockStore) Query(
	_ context.Context, _ string, vector []float32, topK int,
) ([]domain.ScoredDocument, error) {
	m.lastVector = vector
	m.lastTopK = topK
	return m.docs, m.err
}

type mockEmbedder struct {
	vector []float32
	err    error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vector}, nil
}

func scoredDoc(id, title string, score float64) domain.ScoredDocument {
	return domain.ScoredDocument{
		Document: domain.EnforcementDocument{
			ID:           id,
			Title:        title,
			KeyFacts:     "key facts of " + id,
			DocumentText: "full text of " + id,
		},
		Score: score,
	}
}

func TestRetrieve_OrderPreserved(t *testing.T) {
	store := &mockStore{docs: []domain.ScoredDocument{
		scoredDoc("a", "First", 0.9),
		scoredDoc("b", "Second", 0.5),
		scoredDoc("c", "Third", 0.1),
	}}
	svc := New(store, &mockEmbedder{vector: []float32{1, 0}}, Config{TopK: 15, VectorDim: 2}, zap.NewNop())

	evidence, err := svc.Retrieve(context.Background(), "question")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}

	if len(evidence) != 3 {
		t.Fatalf("expected 3 evidence items, got %d", len(evidence))
	}
	for i, id := range []string{"a", "b", "c"} {
		if evidence[i].ID != id {
			t.Errorf("evidence[%d].ID = %q, expected %q (rank order broken)", i, evidence[i].ID, id)
		}
	}
	if store.lastTopK != 15 {
		t.Errorf("topK = %d, expected 15", store.lastTopK)
	}
}

func TestRetrieve_ContentLabels(t *testing.T) {
	store := &mockStore{docs: []domain.ScoredDocument{{
		Document: domain.EnforcementDocument{
			ID:           "a",
			Title:        "Alpha Settlement",
			KeyFacts:     "the facts",
			DocumentText: "the text",
			Commentary:   "the commentary",
		},
		Score: 1.0,
	}}}
	svc := New(store, &mockEmbedder{vector: []float32{1}}, Config{TopK: 5, VectorDim: 1}, zap.NewNop())

	evidence, err := svc.Retrieve(context.Background(), "question")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}

	content := evidence[0].Content
	for _, label := range []string{
		"=== TITLE ===", "=== END TITLE ===",
		"=== KEY FACTS ===", "=== END KEY FACTS ===",
		"=== DOCUMENT TEXT ===", "=== END DOCUMENT TEXT ===",
		"=== COMMENTARY ===", "=== END COMMENTARY ===",
	} {
		if !strings.Contains(content, label) {
			t.Errorf("content missing %q:\n%s", label, content)
		}
	}
	if !strings.Contains(content, "Alpha Settlement") {
		t.Error("content missing title text")
	}
}

func TestRetrieve_EmptySectionsOmitted(t *testing.T) {
	store := &mockStore{docs: []domain.ScoredDocument{{
		Document: domain.EnforcementDocument{
			ID:       "a",
			Title:    "Alpha",
			KeyFacts: "facts only",
		},
	}}}
	svc := New(store, &mockEmbedder{vector: []float32{1}}, Config{TopK: 5, VectorDim: 1}, zap.NewNop())

	evidence, err := svc.Retrieve(context.Background(), "question")
	if err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}

	content := evidence[0].Content
	if strings.Contains(content, "DOCUMENT TEXT") || strings.Contains(content, "COMMENTARY") {
		t.Errorf("empty sections must be omitted:\n%s", content)
	}
}

func TestRetrieve_EmbeddingFailureDegradesToZeroVector(t *testing.T) {
	store := &mockStore{docs: nil}
	emb := &mockEmbedder{err: errors.New("provider down")}
	svc := New(store, emb, Config{TopK: 5, VectorDim: 4}, zap.NewNop())

	_, err := svc.Retrieve(context.Background(), "question")
	if err != nil {
		t.Fatalf("embedding failure must not abort retrieval: %v", err)
	}

	if len(store.lastVector) != 4 {
		t.Fatalf("expected zero vector of dim 4, got %v", store.lastVector)
	}
	for i, v := range store.lastVector {
		if v != 0 {
			t.Errorf("vector[%d] = %v, expected 0", i, v)
		}
	}
}

func TestRetrieve_StoreErrorPropagates(t *testing.T) {
	store := &mockStore{err: domain.ErrEvidenceStoreError}
	svc := New(store, &mockEmbedder{vector: []float32{1}}, Config{TopK: 5, VectorDim: 1}, zap.NewNop())

	_, err := svc.Retrieve(context.Background(), "question")
	if !errors.Is(err, domain.ErrEvidenceStoreError) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
