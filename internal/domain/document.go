package domain

// TriState is a yes/no/not-stated flag used by enforcement metadata
// where absence of a statement is itself meaningful.
type TriState string

const (
	// TriYes means the flag is affirmatively stated.
	TriYes TriState = "yes"
	// TriNo means the flag is negatively stated.
	TriNo TriState = "no"
	// TriNotStated means the document does not state the flag either way.
	TriNotStated TriState = "not_stated"
)

// EnforcementDocument is the unit of retrieval: one enforcement action with
// three independently embedded text bodies.
type EnforcementDocument struct {
	ID            string
	Title         string
	BrowserFile   string
	DateIssued    string
	Published     bool
	DocumentTypes string

	// Long-text bodies, each with its own embedding. A body may be empty;
	// its vector is then the zero vector, never omitted, so every document
	// carries the same vector arity in the index.
	KeyFacts           string
	DocumentText       string
	Commentary         string
	KeyFactsVector     []float32
	DocumentTextVector []float32
	CommentaryVector   []float32

	NumberOfViolations int
	SettlementAmount   float64
	SanctionPrograms   []string
	Industries         []string
	PenaltyTiers       []string
	Characterizations  []string

	VoluntaryDisclosure TriState
	EgregiousCase       TriState
}

// NormalizeVectors replaces missing body vectors with zero vectors of the
// given dimensionality. Vectors already present are left untouched.
func (d *EnforcementDocument) NormalizeVectors(dim int) {
	if len(d.KeyFactsVector) == 0 {
		d.KeyFactsVector = ZeroVector(dim)
	}
	if len(d.DocumentTextVector) == 0 {
		d.DocumentTextVector = ZeroVector(dim)
	}
	if len(d.CommentaryVector) == 0 {
		d.CommentaryVector = ZeroVector(dim)
	}
}

// ScoredDocument pairs a retrieved document with its fused rank score.
type ScoredDocument struct {
	Document EnforcementDocument
	Score    float64
}

// Vector field names in the evidence store index.
const (
	FieldKeyFactsVector     = "KeyFactsVector"
	FieldDocumentTextVector = "DocumentTextVector"
	FieldCommentaryVector   = "CommentaryVector"
)

// VectorFields lists the embedded body fields queried by hybrid retrieval.
func VectorFields() []string {
	return []string{FieldKeyFactsVector, FieldDocumentTextVector, FieldCommentaryVector}
}
