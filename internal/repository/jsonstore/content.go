package jsonstore

import (
	"context"
	"path/filepath"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

// Content document names within a region's bundle.
const (
	docProducts     = "products.json"
	docTopics       = "topics.json"
	docBanners      = "incidents.json"
	docPopups       = "popups.json"
	docArticles     = "articles.json"
	docContact      = "contact.json"
	docReleaseNotes = "release-notes.json"
)

// ContentStore implements repository.ContentRepository. Each region owns one
// bundle of whole-document JSON files; a missing document reads as an empty
// collection.
type ContentStore struct {
	store   *Store
	metrics *metrics.Metrics
}

// NewContentStore builds the store. metrics may be nil in tests.
func NewContentStore(store *Store, m *metrics.Metrics) *ContentStore {
	return &ContentStore{store: store, metrics: m}
}

func docPath(region, doc string) string {
	return filepath.Join("content", region, doc)
}

func (c *ContentStore) save(region, doc string, v interface{}) error {
	if err := c.store.writeDoc(docPath(region, doc), v); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.DocumentWrites.WithLabelValues(doc).Inc()
	}
	return nil
}

func (c *ContentStore) Products(ctx context.Context, region string) ([]model.Product, error) {
	return readSlice[model.Product](c.store, docPath(region, docProducts))
}

func (c *ContentStore) SaveProducts(ctx context.Context, region string, items []model.Product) error {
	return c.save(region, docProducts, items)
}

func (c *ContentStore) Topics(ctx context.Context, region string) ([]model.Topic, error) {
	return readSlice[model.Topic](c.store, docPath(region, docTopics))
}

func (c *ContentStore) SaveTopics(ctx context.Context, region string, items []model.Topic) error {
	return c.save(region, docTopics, items)
}

func (c *ContentStore) Banners(ctx context.Context, region string) ([]model.IncidentBanner, error) {
	return readSlice[model.IncidentBanner](c.store, docPath(region, docBanners))
}

func (c *ContentStore) SaveBanners(ctx context.Context, region string, items []model.IncidentBanner) error {
	return c.save(region, docBanners, items)
}

func (c *ContentStore) Popups(ctx context.Context, region string) ([]model.PopupModal, error) {
	return readSlice[model.PopupModal](c.store, docPath(region, docPopups))
}

func (c *ContentStore) SavePopups(ctx context.Context, region string, items []model.PopupModal) error {
	return c.save(region, docPopups, items)
}

func (c *ContentStore) Articles(ctx context.Context, region string) ([]model.SearchDocument, error) {
	return readSlice[model.SearchDocument](c.store, docPath(region, docArticles))
}

func (c *ContentStore) SaveArticles(ctx context.Context, region string, items []model.SearchDocument) error {
	return c.save(region, docArticles, items)
}

func (c *ContentStore) ContactMethods(ctx context.Context, region string) ([]model.ContactMethod, error) {
	return readSlice[model.ContactMethod](c.store, docPath(region, docContact))
}

func (c *ContentStore) SaveContactMethods(ctx context.Context, region string, items []model.ContactMethod) error {
	return c.save(region, docContact, items)
}

func (c *ContentStore) ReleaseNotes(ctx context.Context, region string) ([]model.ReleaseNote, error) {
	return readSlice[model.ReleaseNote](c.store, docPath(region, docReleaseNotes))
}

func (c *ContentStore) SaveReleaseNotes(ctx context.Context, region string, items []model.ReleaseNote) error {
	return c.save(region, docReleaseNotes, items)
}
