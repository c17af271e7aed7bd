package notice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpcentre-io/helpcentre-api/internal/content"
	"github.com/helpcentre-io/helpcentre-api/internal/content/dismissal"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository"
	"github.com/helpcentre-io/helpcentre-api/internal/repository/jsonstore"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("test_notice")

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	regions := jsonstore.NewRegionStore(store)
	require.NoError(t, regions.CreateRegion(context.Background(), &model.Region{
		Code: "uk-ireland",
		Name: "UK & Ireland",
		Countries: []model.Country{
			{Code: "gb", Name: "United Kingdom", Region: "uk-ireland"},
			{Code: "ie", Name: "Ireland", Region: "uk-ireland"},
		},
	}))

	return NewService(regions, jsonstore.NewContentStore(store, nil), dismissal.NewMemoryStore(), testMetrics)
}

func TestActiveBannerForCountry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.ReplaceBanners(ctx, "uk-ireland", []model.IncidentBanner{
		{ID: "b-gb", State: model.BannerStateError, Title: "GB outage", Scope: model.Scope{Type: model.ScopeGlobal}, Active: true, Countries: []string{"gb"}},
		{ID: "b-all", State: model.BannerStateInfo, Title: "Maintenance", Scope: model.Scope{Type: model.ScopeGlobal}, Active: true},
	}))

	got, err := svc.ActiveBanner(ctx, "gb", content.PageContext{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b-gb", got.ID)

	// Ireland cannot see the gb-only banner, so the info one wins.
	got, err = svc.ActiveBanner(ctx, "ie", content.PageContext{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b-all", got.ID)
}

func TestActiveBannerUnknownCountry(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ActiveBanner(context.Background(), "zz", content.PageContext{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEligiblePopupDismissalFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.ReplacePopups(ctx, "uk-ireland", []model.PopupModal{
		{ID: "p-1", Title: "Survey", Scope: model.Scope{Type: model.ScopeGlobal}, Trigger: model.Trigger{Type: model.TriggerImmediate}, Priority: 5, Active: true},
		{ID: "p-2", Title: "Promo", Scope: model.Scope{Type: model.ScopeGlobal}, Trigger: model.Trigger{Type: model.TriggerDelay, Delay: 2000}, Priority: 1, Active: true},
	}))

	offer, err := svc.EligiblePopup(ctx, "gb", "client-1", content.PageContext{})
	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, "p-1", offer.Popup.ID)
	assert.Equal(t, model.TriggerImmediate, offer.Directive.Mode)

	require.NoError(t, svc.DismissPopup(ctx, "client-1", "p-1"))

	offer, err = svc.EligiblePopup(ctx, "gb", "client-1", content.PageContext{})
	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, "p-2", offer.Popup.ID)
	assert.Equal(t, 2000, offer.Directive.DelayMS)

	// Another client still sees the original winner.
	offer, err = svc.EligiblePopup(ctx, "gb", "client-2", content.PageContext{})
	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, "p-1", offer.Popup.ID)
}

func TestEligiblePopupNoneReturnsNil(t *testing.T) {
	svc := newTestService(t)
	offer, err := svc.EligiblePopup(context.Background(), "gb", "client-1", content.PageContext{})
	require.NoError(t, err)
	assert.Nil(t, offer)
}

func TestReplaceBannersRejectsInvalidScope(t *testing.T) {
	svc := newTestService(t)
	err := svc.ReplaceBanners(context.Background(), "uk-ireland", []model.IncidentBanner{
		{ID: "b-1", State: model.BannerStateInfo, Title: "t", Scope: model.Scope{Type: model.ScopeProduct}},
	})
	assert.Error(t, err)
}

func TestReplacePopupsRejectsDuplicateIDs(t *testing.T) {
	svc := newTestService(t)
	popup := model.PopupModal{ID: "p-1", Title: "t", Scope: model.Scope{Type: model.ScopeGlobal}, Trigger: model.Trigger{Type: model.TriggerImmediate}}
	err := svc.ReplacePopups(context.Background(), "uk-ireland", []model.PopupModal{popup, popup})
	assert.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestUpsertAndDeleteBanner(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	b := model.IncidentBanner{ID: "b-1", State: model.BannerStateCaution, Title: "t", Scope: model.Scope{Type: model.ScopeGlobal}, Active: true}
	require.NoError(t, svc.UpsertBanner(ctx, "uk-ireland", &b))

	b.Title = "updated"
	require.NoError(t, svc.UpsertBanner(ctx, "uk-ireland", &b))

	got, err := svc.ActiveBanner(ctx, "gb", content.PageContext{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "updated", got.Title)

	require.NoError(t, svc.DeleteBanner(ctx, "uk-ireland", "b-1"))
	assert.ErrorIs(t, svc.DeleteBanner(ctx, "uk-ireland", "b-1"), repository.ErrNotFound)
}
