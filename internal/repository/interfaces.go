package repository

import (
	"context"
	"errors"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
)

// Sentinel errors shared by all store implementations. Handlers translate
// these to HTTP status codes.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrDuplicateID    = errors.New("id already in use")
	ErrRegionExists   = errors.New("region already exists")
)

// All repository interfaces in one file
type (
	// RegionRepository handles the region/country catalogue.
	RegionRepository interface {
		ListRegions(ctx context.Context) ([]model.Region, error)
		GetRegion(ctx context.Context, code string) (*model.Region, error)
		CreateRegion(ctx context.Context, region *model.Region) error
		// ResolveCountry maps a two-letter country code to its region and
		// country entry.
		ResolveCountry(ctx context.Context, code string) (*model.Region, *model.Country, error)
		SiteConfig(ctx context.Context, regionCode string) (*model.SiteConfig, error)
		SaveSiteConfig(ctx context.Context, regionCode string, cfg *model.SiteConfig) error
	}

	// ContentRepository reads and replaces whole content documents per
	// region. A write replaces the full document; last write wins.
	ContentRepository interface {
		Products(ctx context.Context, region string) ([]model.Product, error)
		SaveProducts(ctx context.Context, region string, items []model.Product) error
		Topics(ctx context.Context, region string) ([]model.Topic, error)
		SaveTopics(ctx context.Context, region string, items []model.Topic) error
		Banners(ctx context.Context, region string) ([]model.IncidentBanner, error)
		SaveBanners(ctx context.Context, region string, items []model.IncidentBanner) error
		Popups(ctx context.Context, region string) ([]model.PopupModal, error)
		SavePopups(ctx context.Context, region string, items []model.PopupModal) error
		Articles(ctx context.Context, region string) ([]model.SearchDocument, error)
		SaveArticles(ctx context.Context, region string, items []model.SearchDocument) error
		ContactMethods(ctx context.Context, region string) ([]model.ContactMethod, error)
		SaveContactMethods(ctx context.Context, region string, items []model.ContactMethod) error
		ReleaseNotes(ctx context.Context, region string) ([]model.ReleaseNote, error)
		SaveReleaseNotes(ctx context.Context, region string, items []model.ReleaseNote) error
	}

	// UserRepository is the JSON-file user store.
	UserRepository interface {
		List(ctx context.Context) ([]model.User, error)
		Get(ctx context.Context, id string) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		Create(ctx context.Context, user *model.User) error
		Update(ctx context.Context, user *model.User) error
		Delete(ctx context.Context, id string) error
	}
)
