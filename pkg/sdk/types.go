package lexdex

// QueryType is the routing tag assigned to a question by the server.
type QueryType string

// Query routing tags.
const (
	QueryKeywordSearch  QueryType = "keyword_search"
	QueryDocumentSearch QueryType = "document_search"
	QueryStatistical    QueryType = "statistical"
	QueryClarification  QueryType = "clarification_needed"
	QueryError          QueryType = "error"
)

// Classification describes how the server routed the question.
type Classification struct {
	QueryType             QueryType `json:"query_type"`
	Confidence            float64   `json:"confidence"`
	Reasoning             string    `json:"reasoning"`
	ClarificationQuestion string    `json:"clarification_question,omitempty"`
}

// Evidence is one retrieved document with its fused relevance score.
type Evidence struct {
	ID               string  `json:"id"`
	Content          string  `json:"content"`
	Title            string  `json:"title"`
	BrowserFile      string  `json:"browser_file"`
	DateIssued       string  `json:"date_issued"`
	DocumentTypes    string  `json:"document_types"`
	SettlementAmount string  `json:"settlement_amount"`
	SanctionPrograms string  `json:"sanction_programs"`
	Industries       string  `json:"industries"`
	Score            float64 `json:"score"`
}

// SearchParameters is the structured-filter form extracted from a
// keyword-style question. Facet values are canonical IDs, or
// "unmapped:<value>" when no mapping exists.
type SearchParameters struct {
	DateIssuedBegin *int  `json:"DateIssuedBegin,omitempty"`
	DateIssuedEnd   *int  `json:"DateIssuedEnd,omitempty"`
	Published       *bool `json:"Published,omitempty"`

	NumberOfViolationsLow  *int `json:"NumberOfViolationsLow,omitempty"`
	NumberOfViolationsHigh *int `json:"NumberOfViolationsHigh,omitempty"`

	LegalIssue                  []string `json:"LegalIssue"`
	Program                     []string `json:"Program"`
	DocumentType                []string `json:"DocumentType"`
	RegulatoryProvision         []string `json:"RegulatoryProvision"`
	EnforcementCharacterization []string `json:"EnforcementCharacterization"`
	OFACPenalty                 []string `json:"OFACPenalty"`
	AggregatePenalty            []string `json:"AggregatePenalty"`
	Industry                    []string `json:"Industry"`
	RespondentNationality       []string `json:"RespondentNationality"`
	VoluntaryDisclosure         []string `json:"VoluntaryDisclosure"`
	EgregiousCase               []string `json:"EgregiousCase"`

	KeyWords            string `json:"KeyWords"`
	ExcludeCommentaries bool   `json:"ExcludeCommentaries"`
}

// Answer is the unified response to a question. QueryType, Documents and
// Answer are always populated; the remaining fields depend on the branch
// the question was routed to.
type Answer struct {
	Question       string          `json:"question"`
	QueryType      QueryType       `json:"query_type"`
	Classification *Classification `json:"classification,omitempty"`
	Documents      []Evidence      `json:"documents"`
	Answer         string          `json:"answer"`

	SearchParameters      *SearchParameters `json:"search_parameters,omitempty"`
	ClarificationQuestion string            `json:"clarification_question,omitempty"`
	Status                string            `json:"status,omitempty"`
	SuggestedAlternative  string            `json:"suggested_alternative,omitempty"`
	Message               string            `json:"message,omitempty"`
	Error                 string            `json:"error,omitempty"`
}

// HealthStatus is the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Healthy reports whether every component check passed.
func (h HealthStatus) Healthy() bool {
	return h.Status == "ok"
}
