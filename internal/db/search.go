package db

// KNNQuery is the input for a vector nearest-neighbor search over one named
// vector field.
type KNNQuery struct {
	Index        string
	Field        string // vector field name, e.g. KeyFactsVector
	Vector       []float32
	K            int
	ReturnFields []string
}

// TextQuery is the input for a lexical full-text search across the index's
// TEXT fields.
type TextQuery struct {
	Index        string
	Query        string
	TopK         int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
