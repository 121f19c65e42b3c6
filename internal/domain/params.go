package domain

// SearchParameters is the structured-filter form of a keyword-style question.
// List facets default to empty slices, meaning "no filter on this facet".
//
// The JSON tags double as the structured-output schema sent to the
// completion provider; facet values arrive as display strings and are
// mapped to canonical IDs by the extractor's mapping step.
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

// EnsureDefaults replaces nil facet slices with empty ones so that
// "no filter" is always an empty list, never null.
func (p *SearchParameters) EnsureDefaults() {
	for _, f := range p.facetRefs() {
		if *f.values == nil {
			*f.values = []string{}
		}
	}
}

// facetRef pairs a facet name with a pointer to its value list.
type facetRef struct {
	name   string
	values *[]string
}

func (p *SearchParameters) facetRefs() []facetRef {
	return []facetRef{
		{"LegalIssue", &p.LegalIssue},
		{"Program", &p.Program},
		{"DocumentType", &p.DocumentType},
		{"RegulatoryProvision", &p.RegulatoryProvision},
		{"EnforcementCharacterization", &p.EnforcementCharacterization},
		{"OFACPenalty", &p.OFACPenalty},
		{"AggregatePenalty", &p.AggregatePenalty},
		{"Industry", &p.Industry},
		{"RespondentNationality", &p.RespondentNationality},
		{"VoluntaryDisclosure", &p.VoluntaryDisclosure},
		{"EgregiousCase", &p.EgregiousCase},
	}
}

// MapFacets rewrites every facet value through fn, in place. fn must be
// total: it returns a canonical ID for every input, falling back to a
// sentinel rather than dropping the value.
func (p *SearchParameters) MapFacets(fn func(facet, value string) string) {
	for _, f := range p.facetRefs() {
		values := *f.values
		for i, v := range values {
			values[i] = fn(f.name, v)
		}
	}
}
