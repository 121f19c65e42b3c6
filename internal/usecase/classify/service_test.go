package classify

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
	"github.com/kailas-cloud/lexdex/internal/metrics"
)

func TestMain(m *testing.M) {
	metrics.RegisterCompletionMetrics()
	os.Exit(m.Run())
}

// mockCompleter returns a canned JSON verdict or an error.
type mockCompleter struct {
	verdict string
	err     error
	calls   int
	lastReq domain.CompletionRequest
}

func (m *mockCompleter) CompleteStructured(
	_ context.Context, req domain.CompletionRequest, _ string, out any,
) error {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return m.err
	}
	return json.Unmarshal([]byte(m.verdict), out)
}

func TestClassify_Verdict(t *testing.T) {
	mc := &mockCompleter{verdict: `{
		"query_type": "keyword_search",
		"confidence": 0.95,
		"reasoning": "date range and program filters"
	}`}
	svc := New(mc, zap.NewNop())

	got := svc.Classify(context.Background(), "Find OFAC violations related to Iran sanctions from 2020 to 2023")

	if got.QueryType != domain.QueryKeywordSearch {
		t.Errorf("QueryType = %q, expected keyword_search", got.QueryType)
	}
	if got.Confidence != 0.95 {
		t.Errorf("Confidence = %v", got.Confidence)
	}
	if mc.lastReq.System == "" {
		t.Error("system prompt not set")
	}
}

func TestClassify_ProviderFailureFallsOpen(t *testing.T) {
	mc := &mockCompleter{err: errors.New("provider down")}
	svc := New(mc, zap.NewNop())

	got := svc.Classify(context.Background(), "anything")

	if got.QueryType != domain.QueryDocumentSearch {
		t.Errorf("fallback QueryType = %q, expected document_search", got.QueryType)
	}
	if got.Confidence != 0.5 {
		t.Errorf("fallback Confidence = %v, expected 0.5", got.Confidence)
	}
	if got.Reasoning == "" {
		t.Error("fallback must carry a reasoning string")
	}
}

func TestClassify_SchemaParseFailureFallsOpen(t *testing.T) {
	mc := &mockCompleter{err: domain.ErrCompletionProviderError}
	svc := New(mc, zap.NewNop())

	got := svc.Classify(context.Background(), "anything")
	if got.QueryType != domain.QueryDocumentSearch {
		t.Errorf("fallback QueryType = %q", got.QueryType)
	}
}

func TestClassify_ClarificationGetsDefaultQuestion(t *testing.T) {
	mc := &mockCompleter{verdict: `{
		"query_type": "clarification_needed",
		"confidence": 0.4,
		"reasoning": "too vague"
	}`}
	svc := New(mc, zap.NewNop())

	got := svc.Classify(context.Background(), "Tell me about sanctions")

	if got.QueryType != domain.QueryClarification {
		t.Fatalf("QueryType = %q", got.QueryType)
	}
	if got.ClarificationQuestion == "" {
		t.Error("clarification verdicts must always carry a clarification question")
	}
}

func TestClassify_NonClarificationDropsQuestion(t *testing.T) {
	mc := &mockCompleter{verdict: `{
		"query_type": "statistical",
		"confidence": 0.9,
		"reasoning": "asks for a count",
		"clarification_question": "spurious"
	}`}
	svc := New(mc, zap.NewNop())

	got := svc.Classify(context.Background(), "How many violations were there in 2023?")

	if got.QueryType != domain.QueryStatistical {
		t.Fatalf("QueryType = %q", got.QueryType)
	}
	if got.ClarificationQuestion != "" {
		t.Error("clarification question must be cleared for non-clarification tags")
	}
}

func TestClassify_ClampsConfidence(t *testing.T) {
	mc := &mockCompleter{verdict: `{
		"query_type": "document_search",
		"confidence": 1.7,
		"reasoning": "overconfident"
	}`}
	svc := New(mc, zap.NewNop())

	if got := svc.Classify(context.Background(), "why"); got.Confidence != 1 {
		t.Errorf("Confidence = %v, expected clamp to 1", got.Confidence)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	mc := &mockCompleter{verdict: `{
		"query_type": "clarification_needed",
		"confidence": 0.3,
		"reasoning": "vague",
		"clarification_question": "Which sanctions program are you interested in?"
	}`}
	svc := New(mc, zap.NewNop())

	first := svc.Classify(context.Background(), "Tell me about sanctions")
	second := svc.Classify(context.Background(), "Tell me about sanctions")

	if first != second {
		t.Errorf("classification not deterministic: %+v vs %+v", first, second)
	}
}
