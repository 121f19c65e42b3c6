package evidence

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/db"
	"github.com/kailas-cloud/lexdex/internal/domain"
)

// stubStore records issued queries and serves canned results per field.
type stubStore struct {
	mu          sync.Mutex
	knnQueries  []*db.KNNQuery
	textQueries []*db.TextQuery

	textResult *db.SearchResult
	knnResults map[string]*db.SearchResult // by vector field
	knnErr     error

	indexExists  bool
	createdIndex *db.IndexDefinition
}

func (s *stubStore) SearchKNN(_ context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knnQueries = append(s.knnQueries, q)
	if s.knnErr != nil {
		return nil, s.knnErr
	}
	if r, ok := s.knnResults[q.Field]; ok {
		return r, nil
	}
	return &db.SearchResult{}, nil
}

func (s *stubStore) SearchText(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textQueries = append(s.textQueries, q)
	if s.textResult != nil {
		return s.textResult, nil
	}
	return &db.SearchResult{}, nil
}

func (s *stubStore) CreateIndex(_ context.Context, def *db.IndexDefinition) error {
	s.createdIndex = def
	return nil
}

func (s *stubStore) IndexExists(_ context.Context, _ string) (bool, error) {
	return s.indexExists, nil
}

func hit(key, title string, score float64) db.SearchEntry {
	return db.SearchEntry{
		Key:   key,
		Score: score,
		Fields: map[string]string{
			"Title":            title,
			"DateIssued":       "2021-03-01",
			"SettlementAmount": "150000.5",
			"SanctionPrograms": "Iran, Cuba",
			"Published":        "1",
		},
	}
}

func testRepo(s *stubStore) *Repo {
	return New(s, Config{KeyPrefix: "lexdex:", KNearest: 30, VectorDim: 4}, zap.NewNop())
}

func TestQuery_RunsAllSubSearches(t *testing.T) {
	s := &stubStore{
		textResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			hit("lexdex:enforcement:doc1", "Alpha", 2.5),
		}},
		knnResults: map[string]*db.SearchResult{
			domain.FieldKeyFactsVector: {Total: 1, Entries: []db.SearchEntry{
				hit("lexdex:enforcement:doc2", "Beta", 0.9),
			}},
		},
	}
	repo := testRepo(s)

	results, err := repo.Query(context.Background(), "sanctions violations", []float32{1, 0, 0, 0}, 15)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if len(s.textQueries) != 1 {
		t.Errorf("expected 1 lexical sub-search, got %d", len(s.textQueries))
	}
	if len(s.knnQueries) != 3 {
		t.Fatalf("expected 3 KNN sub-searches, got %d", len(s.knnQueries))
	}

	seen := map[string]bool{}
	for _, q := range s.knnQueries {
		seen[q.Field] = true
		if q.K != 30 {
			t.Errorf("KNN K = %d, expected 30", q.K)
		}
		if q.Index != "lexdex:enforcement:idx" {
			t.Errorf("KNN index = %q", q.Index)
		}
	}
	for _, f := range domain.VectorFields() {
		if !seen[f] {
			t.Errorf("no KNN sub-search for field %s", f)
		}
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 fused documents, got %d", len(results))
	}
	for _, r := range results {
		if r.Document.ID != "doc1" && r.Document.ID != "doc2" {
			t.Errorf("unexpected document ID %q (prefix not stripped?)", r.Document.ID)
		}
	}
}

func TestQuery_NilVectorSkipsKNN(t *testing.T) {
	s := &stubStore{
		textResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			hit("lexdex:enforcement:doc1", "Alpha", 2.5),
		}},
	}
	repo := testRepo(s)

	results, err := repo.Query(context.Background(), "question", nil, 15)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if len(s.knnQueries) != 0 {
		t.Errorf("expected no KNN sub-searches for nil vector, got %d", len(s.knnQueries))
	}
	if len(results) != 1 || results[0].Document.ID != "doc1" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestQuery_StoreErrorIsWrapped(t *testing.T) {
	s := &stubStore{knnErr: errors.New("connection refused")}
	repo := testRepo(s)

	_, err := repo.Query(context.Background(), "question", []float32{1, 0, 0, 0}, 15)
	if err == nil {
		t.Fatal("expected error from failing sub-search")
	}
	if !errors.Is(err, domain.ErrEvidenceStoreError) {
		t.Errorf("expected ErrEvidenceStoreError, got %v", err)
	}
}

func TestQuery_ParsesDocumentFields(t *testing.T) {
	s := &stubStore{
		textResult: &db.SearchResult{Total: 1, Entries: []db.SearchEntry{
			hit("lexdex:enforcement:doc1", "Alpha Bank Settlement", 1.0),
		}},
	}
	repo := testRepo(s)

	results, err := repo.Query(context.Background(), "question", nil, 5)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	doc := results[0].Document
	if doc.Title != "Alpha Bank Settlement" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.SettlementAmount != 150000.5 {
		t.Errorf("SettlementAmount = %v", doc.SettlementAmount)
	}
	if len(doc.SanctionPrograms) != 2 || doc.SanctionPrograms[1] != "Cuba" {
		t.Errorf("SanctionPrograms = %v (tag split failed?)", doc.SanctionPrograms)
	}
	if !doc.Published {
		t.Error("Published flag not parsed")
	}
}

func TestEnsureIndex_CreatesWhenMissing(t *testing.T) {
	s := &stubStore{indexExists: false}
	repo := testRepo(s)

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("EnsureIndex failed: %v", err)
	}
	if s.createdIndex == nil {
		t.Fatal("expected index creation")
	}
	if s.createdIndex.Name != "lexdex:enforcement:idx" {
		t.Errorf("index name = %q", s.createdIndex.Name)
	}

	vectors := 0
	for _, f := range s.createdIndex.Fields {
		if f.Type == db.IndexFieldVector {
			vectors++
			if f.VectorDim != 4 {
				t.Errorf("vector dim = %d, expected 4", f.VectorDim)
			}
			if f.VectorDistance != db.DistanceCosine {
				t.Errorf("distance = %s, expected COSINE", f.VectorDistance)
			}
		}
	}
	if vectors != 3 {
		t.Errorf("expected 3 vector fields in schema, got %d", vectors)
	}
}

func TestEnsureIndex_SkipsWhenPresent(t *testing.T) {
	s := &stubStore{indexExists: true}
	repo := testRepo(s)

	if err := repo.EnsureIndex(context.Background()); err != nil {
		t.Fatalf("EnsureIndex failed: %v", err)
	}
	if s.createdIndex != nil {
		t.Error("index must not be recreated when it already exists")
	}
}
