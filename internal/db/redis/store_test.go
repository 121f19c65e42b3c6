package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/rueidis/mock"
	"go.uber.org/mock/gomock"

	"github.com/kailas-cloud/lexdex/internal/db"
)

// --- client.go tests ---

func TestPing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.Result(mock.RedisString("PONG")))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPing_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("PING")).
		Return(mock.ErrorResult(context.DeadlineExceeded))

	s := NewStoreForTest(c)
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	tests := []struct {
		s, sub string
		want   bool
	}{
		{"Index Already Exists", "index already exists", true},
		{"UNKNOWN INDEX NAME", "unknown index name", true},
		{"hello world", "world", true},
		{"short", "longer than input", false},
		{"exact", "exact", true},
		{"", "", true},
	}
	for _, tc := range tests {
		got := containsIgnoreCase(tc.s, tc.sub)
		if got != tc.want {
			t.Errorf("containsIgnoreCase(%q, %q) = %v, want %v", tc.s, tc.sub, got, tc.want)
		}
	}
}

// --- hash.go tests ---

func TestHGet_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("HGET", "lexdex:facet:Program", "Iran")).
		Return(mock.Result(mock.RedisString("prog-014")))

	s := NewStoreForTest(c)
	v, err := s.HGet(context.Background(), "lexdex:facet:Program", "Iran")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "prog-014" {
		t.Errorf("expected prog-014, got %q", v)
	}
}

func TestHGet_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("HGET", "lexdex:facet:Program", "Atlantis")).
		Return(mock.Result(mock.RedisNil()))

	s := NewStoreForTest(c)
	_, err := s.HGet(context.Background(), "lexdex:facet:Program", "Atlantis")
	if !errors.Is(err, db.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

// --- search.go tests ---

func TestSearchKNN_BuildsFieldScopedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH" &&
				cmd[1] == "lexdex:enforcement:idx" &&
				cmd[2] == "*=>[KNN 30 @KeyFactsVector $BLOB AS __score]"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(1),
			mock.RedisString("lexdex:enforcement:doc-1"),
			mock.RedisArray(
				mock.RedisString("__score"), mock.RedisString("0.25"),
				mock.RedisString("Title"), mock.RedisString("OFAC Settlement with Acme"),
			),
		)))

	s := NewStoreForTest(c)
	res, err := s.SearchKNN(context.Background(), &db.KNNQuery{
		Index:        "lexdex:enforcement:idx",
		Field:        "KeyFactsVector",
		Vector:       []float32{0.1, 0.2},
		K:            30,
		ReturnFields: []string{"Title"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 1 || len(res.Entries) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	entry := res.Entries[0]
	if entry.Key != "lexdex:enforcement:doc-1" {
		t.Errorf("unexpected key %q", entry.Key)
	}
	if entry.Score != 0.75 {
		t.Errorf("expected similarity 0.75 from distance 0.25, got %f", entry.Score)
	}
	if entry.Fields["Title"] != "OFAC Settlement with Acme" {
		t.Errorf("unexpected fields: %v", entry.Fields)
	}
	if _, ok := entry.Fields["__score"]; ok {
		t.Error("__score must be stripped from returned fields")
	}
}

func TestSearchKNN_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewStoreForTest(mock.NewClient(ctrl))

	_, err := s.SearchKNN(context.Background(), &db.KNNQuery{
		Index: "idx", Vector: []float32{0.1}, K: 5,
	})
	if err == nil {
		t.Fatal("expected error for missing vector field name")
	}
}

func TestSearchText_ParsesScoredEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH" && cmd[1] == "lexdex:enforcement:idx"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(2),
			mock.RedisString("lexdex:enforcement:doc-1"),
			mock.RedisString("2.5"),
			mock.RedisArray(mock.RedisString("Title"), mock.RedisString("First")),
			mock.RedisString("lexdex:enforcement:doc-2"),
			mock.RedisString("1.5"),
			mock.RedisArray(mock.RedisString("Title"), mock.RedisString("Second")),
		)))

	s := NewStoreForTest(c)
	res, err := s.SearchText(context.Background(), &db.TextQuery{
		Index:        "lexdex:enforcement:idx",
		Query:        "iran sanctions",
		TopK:         10,
		ReturnFields: []string{"Title"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(res.Entries))
	}
	if res.Entries[0].Score != 2.5 || res.Entries[1].Score != 1.5 {
		t.Errorf("unexpected scores: %f %f", res.Entries[0].Score, res.Entries[1].Score)
	}
}

func TestSearchText_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	s := NewStoreForTest(c)
	res, err := s.SearchText(context.Background(), &db.TextQuery{
		Index: "idx", Query: "nothing", TopK: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 0 || len(res.Entries) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestEscapeQuery(t *testing.T) {
	got := escapeQuery("penalties over $1m (2022)")
	want := `penalties over \$1m \(2022\)`
	if got != want {
		t.Errorf("escapeQuery = %q, want %q", got, want)
	}
}

// --- index.go tests ---

func TestBuildCreateArgs_VectorField(t *testing.T) {
	def := &db.IndexDefinition{
		Name:     "lexdex:enforcement:idx",
		Prefixes: []string{"lexdex:enforcement:"},
		Fields: []db.IndexField{
			{Name: "Title", Type: db.IndexFieldText},
			{Name: "KeyFactsVector", Type: db.IndexFieldVector, VectorDim: 1536},
		},
	}

	args, err := buildCreateArgs(def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := ""
	for _, a := range args {
		joined += a + " "
	}
	for _, want := range []string{"ON HASH", "PREFIX 1 lexdex:enforcement:", "Title TEXT",
		"KeyFactsVector VECTOR HNSW 10 TYPE FLOAT32 DIM 1536 DISTANCE_METRIC COSINE"} {
		if !contains(joined, want) {
			t.Errorf("expected args to contain %q, got %q", want, joined)
		}
	}
}

func TestBuildCreateArgs_RejectsEmptySchema(t *testing.T) {
	if _, err := buildCreateArgs(&db.IndexDefinition{Name: "idx"}); err == nil {
		t.Fatal("expected error for empty field list")
	}
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && containsIgnoreCase(s, sub)
}
