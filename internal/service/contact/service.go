package contact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/helpcentre-io/helpcentre-api/internal/content"
	"github.com/helpcentre-io/helpcentre-api/internal/email"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
)

type ContactServicer interface {
	MethodsForCountry(ctx context.Context, country, persona string) ([]model.ContactMethod, error)
	SubmitForm(ctx context.Context, country string, req *model.ContactFormRequest) error
}

type Service struct {
	regions  repository.RegionRepository
	contents repository.ContentRepository
	emailSvc email.Service
}

func NewService(regions repository.RegionRepository, contents repository.ContentRepository, emailSvc email.Service) *Service {
	return &Service{regions: regions, contents: contents, emailSvc: emailSvc}
}

func (s *Service) MethodsForCountry(ctx context.Context, country, persona string) ([]model.ContactMethod, error) {
	reg, _, err := s.regions.ResolveCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	methods, err := s.contents.ContactMethods(ctx, reg.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact methods: %w", err)
	}
	methods = content.FilterByCountry(methods, country)
	if persona == "" {
		return methods, nil
	}
	visible := make([]model.ContactMethod, 0, len(methods))
	for _, m := range methods {
		if len(m.Personas) == 0 || containsString(m.Personas, persona) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

// SubmitForm relays a contact-form message to the region's support address.
func (s *Service) SubmitForm(ctx context.Context, country string, req *model.ContactFormRequest) error {
	reg, _, err := s.regions.ResolveCountry(ctx, country)
	if err != nil {
		return err
	}
	site, err := s.regions.SiteConfig(ctx, reg.Code)
	if err != nil {
		return fmt.Errorf("failed to load site config: %w", err)
	}
	if site.SupportEmail == "" {
		return fmt.Errorf("region %s has no support address configured", reg.Code)
	}

	body := fmt.Sprintf("From: %s <%s>\nCountry: %s\n\n%s", req.Name, req.Email, country, req.Message)
	if err := s.emailSvc.Send(ctx, site.SupportEmail, req.Subject, body); err != nil {
		log.Error().Err(err).Str("region", reg.Code).Msg("contact form delivery failed")
		return fmt.Errorf("failed to deliver message: %w", err)
	}
	return nil
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
