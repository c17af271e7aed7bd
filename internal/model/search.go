package model

// SearchDocument is one entry in the searchable article index.
type SearchDocument struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Summary    string            `json:"summary"`
	ProductID  string            `json:"productId,omitempty"`
	Taxonomy   string            `json:"taxonomy,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Language   string            `json:"language,omitempty"`
	Countries  []string          `json:"countries,omitempty"`
}

func (d SearchDocument) CountryVisibility() []string { return d.Countries }

// SearchFilters narrow the candidate set. All provided filters are ANDed.
type SearchFilters struct {
	Products   []string          `json:"products,omitempty"`
	Taxonomy   []string          `json:"taxonomy,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Language   string            `json:"language,omitempty"`
}

// SearchRequest is a ranked query against the document set.
type SearchRequest struct {
	Query   string        `json:"query"`
	Filters SearchFilters `json:"filters"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
}

// SearchHit is a scored document.
type SearchHit struct {
	Document SearchDocument `json:"document"`
	Score    int            `json:"score"`
}

// SearchResult is one page of ranked hits.
type SearchResult struct {
	Hits    []SearchHit `json:"hits"`
	Total   int         `json:"total"`
	Offset  int         `json:"offset"`
	Limit   int         `json:"limit"`
	HasMore bool        `json:"hasMore"`
}
