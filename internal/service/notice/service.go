// Package notice resolves incident banners and popup modals for a page
// context and owns their admin edits.
package notice

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/helpcentre-io/helpcentre-api/internal/content"
	"github.com/helpcentre-io/helpcentre-api/internal/content/dismissal"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

// PopupOffer is an eligible popup together with its display directive.
type PopupOffer struct {
	Popup     model.PopupModal         `json:"popup"`
	Directive content.DisplayDirective `json:"directive"`
}

type NoticeServicer interface {
	ActiveBanner(ctx context.Context, country string, page content.PageContext) (*model.IncidentBanner, error)
	EligiblePopup(ctx context.Context, country, clientID string, page content.PageContext) (*PopupOffer, error)
	DismissPopup(ctx context.Context, clientID, popupID string) error

	ReplaceBanners(ctx context.Context, region string, items []model.IncidentBanner) error
	UpsertBanner(ctx context.Context, region string, item *model.IncidentBanner) error
	DeleteBanner(ctx context.Context, region, id string) error
	ReplacePopups(ctx context.Context, region string, items []model.PopupModal) error
	UpsertPopup(ctx context.Context, region string, item *model.PopupModal) error
	DeletePopup(ctx context.Context, region, id string) error
}

type Service struct {
	regions    repository.RegionRepository
	contents   repository.ContentRepository
	dismissals dismissal.Store
	validate   *validator.Validate
	metrics    *metrics.Metrics
}

func NewService(regions repository.RegionRepository, contents repository.ContentRepository,
	dismissals dismissal.Store, m *metrics.Metrics) *Service {
	return &Service{
		regions:    regions,
		contents:   contents,
		dismissals: dismissals,
		validate:   validator.New(),
		metrics:    m,
	}
}

// ActiveBanner returns the single banner to display for the context, or nil
// when none applies.
func (s *Service) ActiveBanner(ctx context.Context, country string, page content.PageContext) (*model.IncidentBanner, error) {
	reg, _, err := s.regions.ResolveCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	banners, err := s.contents.Banners(ctx, reg.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load banners: %w", err)
	}
	banners = content.FilterByCountry(banners, country)

	banner, ok := content.ActiveBanner(banners, page)
	if !ok {
		s.metrics.BannerResolutions.WithLabelValues("none").Inc()
		return nil, nil
	}
	s.metrics.BannerResolutions.WithLabelValues(banner.State).Inc()
	return &banner, nil
}

// EligiblePopup returns the popup to offer the client for the context, or nil
// when nothing applies or everything eligible was dismissed.
func (s *Service) EligiblePopup(ctx context.Context, country, clientID string, page content.PageContext) (*PopupOffer, error) {
	reg, _, err := s.regions.ResolveCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	popups, err := s.contents.Popups(ctx, reg.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load popups: %w", err)
	}
	popups = content.FilterByCountry(popups, country)

	dismissed := map[string]bool{}
	if clientID != "" {
		ids, err := s.dismissals.Dismissed(ctx, clientID)
		if err != nil {
			return nil, fmt.Errorf("failed to load dismissals: %w", err)
		}
		dismissed = dismissal.Set(ids)
	}

	popup, directive, ok := content.EligiblePopup(popups, page, dismissed)
	if !ok {
		s.metrics.PopupResolutions.WithLabelValues("none").Inc()
		return nil, nil
	}
	s.metrics.PopupResolutions.WithLabelValues(directive.Mode).Inc()
	return &PopupOffer{Popup: popup, Directive: directive}, nil
}

func (s *Service) DismissPopup(ctx context.Context, clientID, popupID string) error {
	if err := s.dismissals.Dismiss(ctx, clientID, popupID); err != nil {
		return fmt.Errorf("failed to record dismissal: %w", err)
	}
	s.metrics.PopupDismissals.Inc()
	return nil
}

func (s *Service) ReplaceBanners(ctx context.Context, region string, items []model.IncidentBanner) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		if err := s.validateBanner(&items[i]); err != nil {
			return err
		}
		if seen[items[i].ID] {
			return fmt.Errorf("banner %s: %w", items[i].ID, repository.ErrDuplicateID)
		}
		seen[items[i].ID] = true
	}
	return s.contents.SaveBanners(ctx, region, items)
}

func (s *Service) UpsertBanner(ctx context.Context, region string, item *model.IncidentBanner) error {
	if err := s.validateBanner(item); err != nil {
		return err
	}
	banners, err := s.contents.Banners(ctx, region)
	if err != nil {
		return err
	}
	replaced := false
	for i := range banners {
		if banners[i].ID == item.ID {
			banners[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		banners = append(banners, *item)
	}
	return s.contents.SaveBanners(ctx, region, banners)
}

func (s *Service) DeleteBanner(ctx context.Context, region, id string) error {
	banners, err := s.contents.Banners(ctx, region)
	if err != nil {
		return err
	}
	for i := range banners {
		if banners[i].ID == id {
			banners = append(banners[:i], banners[i+1:]...)
			return s.contents.SaveBanners(ctx, region, banners)
		}
	}
	return fmt.Errorf("banner %s: %w", id, repository.ErrNotFound)
}

func (s *Service) ReplacePopups(ctx context.Context, region string, items []model.PopupModal) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		if err := s.validatePopup(&items[i]); err != nil {
			return err
		}
		if seen[items[i].ID] {
			return fmt.Errorf("popup %s: %w", items[i].ID, repository.ErrDuplicateID)
		}
		seen[items[i].ID] = true
	}
	return s.contents.SavePopups(ctx, region, items)
}

func (s *Service) UpsertPopup(ctx context.Context, region string, item *model.PopupModal) error {
	if err := s.validatePopup(item); err != nil {
		return err
	}
	popups, err := s.contents.Popups(ctx, region)
	if err != nil {
		return err
	}
	replaced := false
	for i := range popups {
		if popups[i].ID == item.ID {
			popups[i] = *item
			replaced = true
			break
		}
	}
	if !replaced {
		popups = append(popups, *item)
	}
	return s.contents.SavePopups(ctx, region, popups)
}

func (s *Service) DeletePopup(ctx context.Context, region, id string) error {
	popups, err := s.contents.Popups(ctx, region)
	if err != nil {
		return err
	}
	for i := range popups {
		if popups[i].ID == id {
			popups = append(popups[:i], popups[i+1:]...)
			return s.contents.SavePopups(ctx, region, popups)
		}
	}
	return fmt.Errorf("popup %s: %w", id, repository.ErrNotFound)
}

func (s *Service) validateBanner(item *model.IncidentBanner) error {
	if err := s.validate.Struct(item); err != nil {
		return fmt.Errorf("invalid banner: %w", err)
	}
	if err := content.ValidateScope(item.Scope); err != nil {
		return fmt.Errorf("banner %s: %w", item.ID, err)
	}
	return nil
}

func (s *Service) validatePopup(item *model.PopupModal) error {
	if err := s.validate.Struct(item); err != nil {
		return fmt.Errorf("invalid popup: %w", err)
	}
	if err := content.ValidateScope(item.Scope); err != nil {
		return fmt.Errorf("popup %s: %w", item.ID, err)
	}
	return nil
}
