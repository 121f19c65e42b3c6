package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/domain"
)

type mockCompleter struct {
	answer  string
	err     error
	calls   int
	lastReq domain.CompletionRequest
}

func (m *mockCompleter) Complete(_ context.Context, req domain.CompletionRequest) (string, error) {
	m.calls++
	m.lastReq = req
	return m.answer, m.err
}

func someEvidence() []domain.Evidence {
	return []domain.Evidence{
		{ID: "a", Title: "Alpha Settlement", Content: "=== TITLE ===\nAlpha Settlement\n=== END TITLE ==="},
		{ID: "b", Title: "Beta Penalty", Content: "=== TITLE ===\nBeta Penalty\n=== END TITLE ==="},
	}
}

func TestSynthesize_PassesAnswerThrough(t *testing.T) {
	mc := &mockCompleter{answer: "According to [Alpha Settlement], the import is prohibited."}
	svc := New(mc, Config{MaxTokens: 1000}, zap.NewNop())

	got := svc.Synthesize(context.Background(), "can it be imported?", someEvidence())

	if got != mc.answer {
		t.Errorf("answer = %q, expected provider output unmodified", got)
	}
	if mc.lastReq.MaxTokens != 1000 {
		t.Errorf("MaxTokens = %d, expected 1000", mc.lastReq.MaxTokens)
	}
}

func TestSynthesize_NoRelevantInfoPassedThrough(t *testing.T) {
	// The grounding rule lives in the prompt; the service must not second-
	// guess a "nothing found" reply from the provider.
	mc := &mockCompleter{answer: "I couldn't find any relevant information to answer the question."}
	svc := New(mc, Config{}, zap.NewNop())

	got := svc.Synthesize(context.Background(), "unrelated question", someEvidence())
	if got != mc.answer {
		t.Errorf("answer = %q, expected pass-through", got)
	}
}

func TestSynthesize_EmptyEvidenceSkipsProvider(t *testing.T) {
	mc := &mockCompleter{answer: "should not be used"}
	svc := New(mc, Config{}, zap.NewNop())

	got := svc.Synthesize(context.Background(), "question", nil)

	if mc.calls != 0 {
		t.Error("provider must not be called with empty evidence")
	}
	if got != noEvidenceAnswer {
		t.Errorf("answer = %q, expected deterministic no-evidence text", got)
	}
}

func TestSynthesize_ProviderFailureFallsOpen(t *testing.T) {
	mc := &mockCompleter{err: errors.New("provider down")}
	svc := New(mc, Config{}, zap.NewNop())

	got := svc.Synthesize(context.Background(), "question", someEvidence())
	if got != failureAnswer {
		t.Errorf("answer = %q, expected deterministic failure text", got)
	}
}

func TestSynthesize_NumbersEvidenceInPrompt(t *testing.T) {
	mc := &mockCompleter{answer: "ok"}
	svc := New(mc, Config{}, zap.NewNop())

	svc.Synthesize(context.Background(), "question", someEvidence())

	user := mc.lastReq.User
	if !strings.Contains(user, "DOCUMENT 1:") || !strings.Contains(user, "DOCUMENT 2:") {
		t.Errorf("user prompt missing numbered documents:\n%s", user)
	}
	if !strings.Contains(user, "User Question: question") {
		t.Error("user prompt missing the question")
	}
	if !strings.Contains(mc.lastReq.System, "[title]") {
		t.Error("system prompt missing bracket citation rule")
	}
}
