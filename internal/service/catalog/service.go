// Package catalog owns the product and support-topic content: country-scoped
// public views and whole-document admin edits.
package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/helpcentre-io/helpcentre-api/internal/content"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
)

type CatalogServicer interface {
	ProductsForCountry(ctx context.Context, country, persona string) ([]model.Product, error)
	TopicsForCountry(ctx context.Context, country string) ([]model.Topic, error)
	ProductLandingTopics(ctx context.Context, country, productID string) ([]model.Topic, error)
	Subtopics(ctx context.Context, country, productID, topicID string) ([]model.Topic, error)

	ReplaceProducts(ctx context.Context, region string, items []model.Product) error
	UpsertProduct(ctx context.Context, region string, item *model.Product) error
	DeleteProduct(ctx context.Context, region, id string) error
	ReorderProducts(ctx context.Context, region, id, beforeID string) error

	ReleaseNotesForCountry(ctx context.Context, country, productID string) ([]model.ReleaseNote, error)
	ReplaceReleaseNotes(ctx context.Context, region string, items []model.ReleaseNote) error

	ReplaceTopics(ctx context.Context, region string, items []model.Topic) error
	UpsertTopic(ctx context.Context, region string, item *model.Topic) error
	DeleteTopic(ctx context.Context, region, id string) error
	ReorderTopics(ctx context.Context, region, id, beforeID string) error
}

type Service struct {
	regions  repository.RegionRepository
	contents repository.ContentRepository
	validate *validator.Validate
}

func NewService(regions repository.RegionRepository, contents repository.ContentRepository) *Service {
	return &Service{
		regions:  regions,
		contents: contents,
		validate: validator.New(),
	}
}

func (s *Service) regionFor(ctx context.Context, country string) (string, error) {
	reg, _, err := s.regions.ResolveCountry(ctx, country)
	if err != nil {
		return "", err
	}
	return reg.Code, nil
}

// ProductsForCountry returns the products visible in the country, optionally
// narrowed to one persona.
func (s *Service) ProductsForCountry(ctx context.Context, country, persona string) ([]model.Product, error) {
	region, err := s.regionFor(ctx, country)
	if err != nil {
		return nil, err
	}
	products, err := s.contents.Products(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	products = content.FilterByCountry(products, country)
	if persona == "" {
		return products, nil
	}
	visible := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.HasPersona(persona) {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

func (s *Service) TopicsForCountry(ctx context.Context, country string) ([]model.Topic, error) {
	region, err := s.regionFor(ctx, country)
	if err != nil {
		return nil, err
	}
	topics, err := s.contents.Topics(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}
	return content.FilterByCountry(topics, country), nil
}

// ProductLandingTopics returns the topics shown on a product landing page:
// top-level topics always, subtopics only when flagged.
func (s *Service) ProductLandingTopics(ctx context.Context, country, productID string) ([]model.Topic, error) {
	topics, err := s.TopicsForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	out := make([]model.Topic, 0, len(topics))
	for _, t := range topics {
		if t.ProductID != productID {
			continue
		}
		if t.IsTopLevel() || t.ShowOnProductLanding {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Service) Subtopics(ctx context.Context, country, productID, topicID string) ([]model.Topic, error) {
	topics, err := s.TopicsForCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	out := make([]model.Topic, 0, len(topics))
	for _, t := range topics {
		if t.ProductID == productID && t.ParentTopicID == topicID {
			out = append(out, t)
		}
	}
	return out, nil
}

// ReleaseNotesForCountry returns the country's release notes, optionally for
// one product only.
func (s *Service) ReleaseNotesForCountry(ctx context.Context, country, productID string) ([]model.ReleaseNote, error) {
	region, err := s.regionFor(ctx, country)
	if err != nil {
		return nil, err
	}
	notes, err := s.contents.ReleaseNotes(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("failed to load release notes: %w", err)
	}
	notes = content.FilterByCountry(notes, country)
	if productID == "" {
		return notes, nil
	}
	out := make([]model.ReleaseNote, 0, len(notes))
	for _, n := range notes {
		if n.ProductID == productID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Service) ReplaceReleaseNotes(ctx context.Context, region string, items []model.ReleaseNote) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		if err := s.validate.Struct(&items[i]); err != nil {
			return fmt.Errorf("invalid release note %s: %w", items[i].ID, err)
		}
		if seen[items[i].ID] {
			return fmt.Errorf("release note %s: %w", items[i].ID, repository.ErrDuplicateID)
		}
		seen[items[i].ID] = true
	}
	return s.contents.SaveReleaseNotes(ctx, region, items)
}

func (s *Service) ReplaceProducts(ctx context.Context, region string, items []model.Product) error {
	if err := s.validateProducts(items); err != nil {
		return err
	}
	return s.contents.SaveProducts(ctx, region, items)
}

func (s *Service) UpsertProduct(ctx context.Context, region string, item *model.Product) error {
	if err := s.validate.Struct(item); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}
	products, err := s.contents.Products(ctx, region)
	if err != nil {
		return err
	}
	replaced := false
	for i := range products {
		if products[i].ID == item.ID {
			products[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, *item)
	}
	return s.contents.SaveProducts(ctx, region, products)
}

func (s *Service) DeleteProduct(ctx context.Context, region, id string) error {
	products, err := s.contents.Products(ctx, region)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return s.contents.SaveProducts(ctx, region, products)
		}
	}
	return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
}

func (s *Service) ReorderProducts(ctx context.Context, region, id, beforeID string) error {
	products, err := s.contents.Products(ctx, region)
	if err != nil {
		return err
	}
	reordered, err := content.ReorderByID(products, func(p model.Product) string { return p.ID }, id, beforeID)
	if err != nil {
		return fmt.Errorf("reorder products: %w", err)
	}
	return s.contents.SaveProducts(ctx, region, reordered)
}

func (s *Service) ReplaceTopics(ctx context.Context, region string, items []model.Topic) error {
	if err := s.validateTopics(items); err != nil {
		return err
	}
	return s.contents.SaveTopics(ctx, region, items)
}

func (s *Service) UpsertTopic(ctx context.Context, region string, item *model.Topic) error {
	if err := s.validate.Struct(item); err != nil {
		return fmt.Errorf("invalid topic: %w", err)
	}
	topics, err := s.contents.Topics(ctx, region)
	if err != nil {
		return err
	}
	if item.ParentTopicID != "" {
		if err := checkParent(topics, item); err != nil {
			return err
		}
	}
	replaced := false
	for i := range topics {
		if topics[i].ID == item.ID {
			topics[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		topics = append(topics, *item)
	}
	return s.contents.SaveTopics(ctx, region, topics)
}

func (s *Service) DeleteTopic(ctx context.Context, region, id string) error {
	topics, err := s.contents.Topics(ctx, region)
	if err != nil {
		return err
	}
	kept := make([]model.Topic, 0, len(topics))
	found := false
	for _, t := range topics {
		if t.ID == id {
			found = true
			continue
		}
		// Deleting a parent orphans its subtopics; drop them with it.
		if t.ParentTopicID == id {
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("topic %s: %w", id, repository.ErrNotFound)
	}
	return s.contents.SaveTopics(ctx, region, kept)
}

func (s *Service) ReorderTopics(ctx context.Context, region, id, beforeID string) error {
	topics, err := s.contents.Topics(ctx, region)
	if err != nil {
		return err
	}
	reordered, err := content.ReorderByID(topics, func(t model.Topic) string { return t.ID }, id, beforeID)
	if err != nil {
		return fmt.Errorf("reorder topics: %w", err)
	}
	return s.contents.SaveTopics(ctx, region, reordered)
}

func (s *Service) validateProducts(items []model.Product) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		if err := s.validate.Struct(&items[i]); err != nil {
			return fmt.Errorf("invalid product %s: %w", items[i].ID, err)
		}
		if seen[items[i].ID] {
			return fmt.Errorf("product %s: %w", items[i].ID, repository.ErrDuplicateID)
		}
		seen[items[i].ID] = true
	}
	return nil
}

func (s *Service) validateTopics(items []model.Topic) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		if err := s.validate.Struct(&items[i]); err != nil {
			return fmt.Errorf("invalid topic %s: %w", items[i].ID, err)
		}
		if seen[items[i].ID] {
			return fmt.Errorf("topic %s: %w", items[i].ID, repository.ErrDuplicateID)
		}
		seen[items[i].ID] = true
	}
	for i := range items {
		if items[i].ParentTopicID != "" {
			if err := checkParent(items, &items[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkParent enforces the two-level tree: a subtopic's parent must exist and
// must itself be top-level.
func checkParent(topics []model.Topic, item *model.Topic) error {
	for _, t := range topics {
		if t.ID != item.ParentTopicID {
			continue
		}
		if !t.IsTopLevel() {
			return fmt.Errorf("topic %s: parent %s is not top-level", item.ID, t.ID)
		}
		return nil
	}
	return fmt.Errorf("topic %s: parent %s does not exist", item.ID, item.ParentTopicID)
}
