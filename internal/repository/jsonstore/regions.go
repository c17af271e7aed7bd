package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
)

const regionsDoc = "regions.json"

// RegionStore implements repository.RegionRepository over the document store.
// The whole region catalogue lives in one document; per-region site config
// sits next to the region's content bundle.
type RegionStore struct {
	store *Store
}

func NewRegionStore(store *Store) *RegionStore {
	return &RegionStore{store: store}
}

func (r *RegionStore) ListRegions(ctx context.Context) ([]model.Region, error) {
	return readSlice[model.Region](r.store, regionsDoc)
}

func (r *RegionStore) GetRegion(ctx context.Context, code string) (*model.Region, error) {
	regions, err := r.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range regions {
		if regions[i].Code == code {
			return &regions[i], nil
		}
	}
	return nil, fmt.Errorf("region %s: %w", code, repository.ErrNotFound)
}

func (r *RegionStore) CreateRegion(ctx context.Context, region *model.Region) error {
	regions, err := r.ListRegions(ctx)
	if err != nil {
		return err
	}
	for _, existing := range regions {
		if existing.Code == region.Code {
			return fmt.Errorf("region %s: %w", region.Code, repository.ErrRegionExists)
		}
	}
	regions = append(regions, *region)
	return r.store.writeDoc(regionsDoc, regions)
}

func (r *RegionStore) ResolveCountry(ctx context.Context, code string) (*model.Region, *model.Country, error) {
	code = strings.ToLower(code)
	regions, err := r.ListRegions(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range regions {
		for j := range regions[i].Countries {
			if strings.ToLower(regions[i].Countries[j].Code) == code {
				return &regions[i], &regions[i].Countries[j], nil
			}
		}
	}
	return nil, nil, fmt.Errorf("country %s: %w", code, repository.ErrNotFound)
}

func (r *RegionStore) SiteConfig(ctx context.Context, regionCode string) (*model.SiteConfig, error) {
	var cfg model.SiteConfig
	if err := r.store.readDoc(siteConfigDoc(regionCode), &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &model.SiteConfig{}, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *RegionStore) SaveSiteConfig(ctx context.Context, regionCode string, cfg *model.SiteConfig) error {
	return r.store.writeDoc(siteConfigDoc(regionCode), cfg)
}

func siteConfigDoc(region string) string {
	return filepath.Join("content", region, "config.json")
}
