package region

import (
	"context"
	"fmt"
	"strings"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
)

type RegionServicer interface {
	ListRegions(ctx context.Context) ([]model.Region, error)
	CountryConfig(ctx context.Context, countryCode string) (*model.CountryConfig, error)
	ResolveCountry(ctx context.Context, countryCode string) (*model.Region, *model.Country, error)
	CreateRegion(ctx context.Context, req *model.CreateRegionRequest) (*model.Region, error)
}

type Service struct {
	repo repository.RegionRepository
}

func NewService(repo repository.RegionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListRegions(ctx context.Context) ([]model.Region, error) {
	regions, err := s.repo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, nil
}

func (s *Service) ResolveCountry(ctx context.Context, countryCode string) (*model.Region, *model.Country, error) {
	return s.repo.ResolveCountry(ctx, countryCode)
}

// CountryConfig resolves a country code into the configuration the front end
// boots from: the country entry plus the region's personas and navigation.
func (s *Service) CountryConfig(ctx context.Context, countryCode string) (*model.CountryConfig, error) {
	reg, country, err := s.repo.ResolveCountry(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	site, err := s.repo.SiteConfig(ctx, reg.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load site config for %s: %w", reg.Code, err)
	}

	return &model.CountryConfig{
		Country:    *country,
		Region:     reg.Code,
		Personas:   site.Personas,
		Navigation: site.Navigation,
	}, nil
}

func (s *Service) CreateRegion(ctx context.Context, req *model.CreateRegionRequest) (*model.Region, error) {
	region := &model.Region{
		Code:      strings.ToLower(req.Code),
		Name:      req.Name,
		Countries: req.Countries,
	}
	for i := range region.Countries {
		region.Countries[i].Code = strings.ToLower(region.Countries[i].Code)
		region.Countries[i].Region = region.Code
	}

	// A country can only belong to one region.
	for _, c := range region.Countries {
		if existing, _, err := s.repo.ResolveCountry(ctx, c.Code); err == nil {
			return nil, fmt.Errorf("country %s already belongs to region %s", c.Code, existing.Code)
		}
	}

	if err := s.repo.CreateRegion(ctx, region); err != nil {
		return nil, fmt.Errorf("failed to create region: %w", err)
	}
	return region, nil
}
