// Package search implements the help-centre article ranker: substring
// candidate matching, AND-filtering, additive scoring and offset/limit
// pagination over an in-memory document set.
package search

import (
	"sort"
	"strings"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
)

const (
	scoreExactTitle  = 100
	scorePrefixTitle = 50
	scoreTitleMatch  = 30
	scoreSummary     = 10
	scoreShortTitle  = 5

	shortTitleLength = 50
	defaultLimit     = 10
)

// Rank scores the documents against the request and returns one page of
// results. An empty or whitespace-only query yields an empty result set.
// Equal scores break by document id ascending so pagination is stable.
func Rank(docs []model.SearchDocument, req model.SearchRequest) model.SearchResult {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	term := strings.ToLower(strings.TrimSpace(req.Query))
	if term == "" {
		return model.SearchResult{Hits: []model.SearchHit{}, Offset: offset, Limit: limit}
	}

	hits := make([]model.SearchHit, 0, len(docs))
	for _, doc := range docs {
		title := strings.ToLower(doc.Title)
		summary := strings.ToLower(doc.Summary)
		if !strings.Contains(title, term) && !strings.Contains(summary, term) {
			continue
		}
		if !matchesFilters(doc, req.Filters) {
			continue
		}
		hits = append(hits, model.SearchHit{Document: doc, Score: score(title, summary, term)})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Document.ID < hits[j].Document.ID
	})

	total := len(hits)
	page := paginate(hits, offset, limit)
	return model.SearchResult{
		Hits:    page,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
		HasMore: offset+limit < total,
	}
}

// score is additive: the title tier (exact/prefix/contains) contributes once,
// the summary and short-title bonuses stack on top.
func score(title, summary, term string) int {
	s := 0
	switch {
	case title == term:
		s += scoreExactTitle
	case strings.HasPrefix(title, term):
		s += scorePrefixTitle
	case strings.Contains(title, term):
		s += scoreTitleMatch
	}
	if strings.Contains(summary, term) {
		s += scoreSummary
	}
	if len(title) < shortTitleLength {
		s += scoreShortTitle
	}
	return s
}

func matchesFilters(doc model.SearchDocument, f model.SearchFilters) bool {
	if len(f.Products) > 0 && !containsString(f.Products, doc.ProductID) {
		return false
	}
	if len(f.Taxonomy) > 0 && !containsString(f.Taxonomy, doc.Taxonomy) {
		return false
	}
	if f.Language != "" && doc.Language != f.Language {
		return false
	}
	for k, want := range f.Attributes {
		if doc.Attributes[k] != want {
			return false
		}
	}
	return true
}

func paginate(hits []model.SearchHit, offset, limit int) []model.SearchHit {
	if offset >= len(hits) {
		return []model.SearchHit{}
	}
	end := offset + limit
	if end > len(hits) {
		end = len(hits)
	}
	return hits[offset:end]
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
