package domain

// Evidence is one ranked retrieval hit handed to the answer synthesizer and
// echoed in the response. Slice order is rank order (most relevant first);
// Score is retrieval-technology-defined and ordering-only, not a probability.
type Evidence struct {
	ID string `json:"id"`
	// Content is the labeled concatenation of the document's text bodies
	// (TITLE / KEY FACTS / DOCUMENT TEXT / COMMENTARY sections). The
	// synthesizer's citation rules depend on these labels.
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
