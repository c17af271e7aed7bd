package search

import (
	"context"
	"fmt"
	"time"

	"github.com/helpcentre-io/helpcentre-api/internal/content"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
	ranker "github.com/helpcentre-io/helpcentre-api/internal/search"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

type SearchServicer interface {
	Search(ctx context.Context, country string, req model.SearchRequest) (*model.SearchResult, error)
	ReplaceArticles(ctx context.Context, region string, items []model.SearchDocument) error
}

type Service struct {
	regions  repository.RegionRepository
	contents repository.ContentRepository
	metrics  *metrics.Metrics
}

func NewService(regions repository.RegionRepository, contents repository.ContentRepository, m *metrics.Metrics) *Service {
	return &Service{regions: regions, contents: contents, metrics: m}
}

// Search ranks the country's article documents against the query.
func (s *Service) Search(ctx context.Context, country string, req model.SearchRequest) (*model.SearchResult, error) {
	reg, _, err := s.regions.ResolveCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	docs, err := s.contents.Articles(ctx, reg.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}
	docs = content.FilterByCountry(docs, country)

	start := time.Now()
	result := ranker.Rank(docs, req)
	s.metrics.SearchLatency.Observe(time.Since(start).Seconds())
	s.metrics.SearchQueries.Inc()
	if result.Total == 0 {
		s.metrics.SearchEmpty.Inc()
	}
	return &result, nil
}

// ReplaceArticles swaps the region's searchable document set wholesale.
func (s *Service) ReplaceArticles(ctx context.Context, region string, items []model.SearchDocument) error {
	seen := make(map[string]bool, len(items))
	for _, doc := range items {
		if doc.ID == "" {
			return fmt.Errorf("article document missing id")
		}
		if seen[doc.ID] {
			return fmt.Errorf("duplicate article id %s", doc.ID)
		}
		seen[doc.ID] = true
	}
	return s.contents.SaveArticles(ctx, region, items)
}
