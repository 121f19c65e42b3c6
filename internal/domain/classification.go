package domain

// QueryType is the routing tag assigned to an incoming question.
type QueryType string

const (
	// QueryKeywordSearch routes to the structured-filter extractor.
	QueryKeywordSearch QueryType = "keyword_search"
	// QueryDocumentSearch routes to hybrid retrieval plus answer synthesis.
	QueryDocumentSearch QueryType = "document_search"
	// QueryStatistical routes to the aggregation stub.
	QueryStatistical QueryType = "statistical"
	// QueryClarification asks the user for more context before searching.
	QueryClarification QueryType = "clarification_needed"
	// QueryError marks a response produced by the orchestrator error path.
	QueryError QueryType = "error"
)

// Valid reports whether t is one of the four classifier output tags.
func (t QueryType) Valid() bool {
	switch t {
	case QueryKeywordSearch, QueryDocumentSearch, QueryStatistical, QueryClarification:
		return true
	}
	return false
}

// QueryClassification is the classifier's verdict for a single question.
// It is produced fresh per request and never persisted.
//
// The JSON tags double as the structured-output schema sent to the
// completion provider.
type QueryClassification struct {
	QueryType  QueryType `json:"query_type"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning"`
	// ClarificationQuestion is populated iff QueryType is QueryClarification.
	ClarificationQuestion string `json:"clarification_question,omitempty"`
}
