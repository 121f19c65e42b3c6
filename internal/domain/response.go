package domain

// Response is the single shape every orchestrator branch normalizes into.
// Question, QueryType, Documents and Answer are always populated; Documents
// is an empty list (never null) when a branch retrieves nothing, and Answer
// is never empty, even on the stub, clarification and error paths.
type Response struct {
	Question       string               `json:"question"`
	QueryType      QueryType            `json:"query_type"`
	Classification *QueryClassification `json:"classification,omitempty"`
	Documents      []Evidence           `json:"documents"`
	Answer         string               `json:"answer"`

	SearchParameters      *SearchParameters `json:"search_parameters,omitempty"`
	ClarificationQuestion string            `json:"clarification_question,omitempty"`
	Status                string            `json:"status,omitempty"`
	SuggestedAlternative  string            `json:"suggested_alternative,omitempty"`
	Message               string            `json:"message,omitempty"`
	Error                 string            `json:"error,omitempty"`
}

// StatusNotImplemented marks the statistical-query stub response.
const StatusNotImplemented = "not_implemented"
