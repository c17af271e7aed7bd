package notice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpcentre-io/helpcentre-api/internal/content"
	"github.com/helpcentre-io/helpcentre-api/internal/content/dismissal"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository/jsonstore"
	noticeService "github.com/helpcentre-io/helpcentre-api/internal/service/notice"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("test_notice_handler")

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	regions := jsonstore.NewRegionStore(store)
	require.NoError(t, regions.CreateRegion(ctx, &model.Region{
		Code: "uk-ireland",
		Countries: []model.Country{
			{Code: "gb", Name: "United Kingdom", Region: "uk-ireland"},
		},
	}))

	contents := jsonstore.NewContentStore(store, nil)
	require.NoError(t, contents.SaveBanners(ctx, "uk-ireland", []model.IncidentBanner{
		{ID: "b-global", State: "info", Title: "Maintenance", Scope: model.Scope{Type: "global"}, Active: true},
		{
			ID: "b-payroll", State: "error", Title: "Payroll outage", Active: true,
			Scope: model.Scope{Type: "product", ProductIDs: []string{"payroll"}},
		},
	}))
	require.NoError(t, contents.SavePopups(ctx, "uk-ireland", []model.PopupModal{
		{
			ID: "p-1", Title: "Year end webinar", Active: true, Priority: 5,
			Scope:   model.Scope{Type: "product", ProductIDs: []string{"payroll"}},
			Trigger: model.Trigger{Type: "immediate"},
		},
	}))

	svc := noticeService.NewService(regions, contents, dismissal.NewMemoryStore(), testMetrics)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestActiveBannerResolvesProductScope(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/api/v1/content/gb/banner?productId=payroll")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data *model.IncidentBanner `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "b-payroll", resp.Data.ID)
}

func TestActiveBannerFallsBackToGlobal(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/api/v1/content/gb/banner")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data *model.IncidentBanner `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "b-global", resp.Data.ID)
}

func TestEligiblePopupThenDismiss(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/api/v1/content/gb/popup?productId=payroll&clientId=c-1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data *noticeService.PopupOffer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "p-1", resp.Data.Popup.ID)
	assert.Equal(t, content.DisplayDirective{Mode: "immediate", DelayMS: 500}, resp.Data.Directive)

	dismiss := httptest.NewRecorder()
	r.ServeHTTP(dismiss, httptest.NewRequest(http.MethodPost, "/api/v1/content/gb/popup/p-1/dismiss?clientId=c-1", nil))
	require.Equal(t, http.StatusOK, dismiss.Code)

	w = get(r, "/api/v1/content/gb/popup?productId=payroll&clientId=c-1")
	require.Equal(t, http.StatusOK, w.Code)
	resp.Data = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data)
}

func TestDismissPopupRequiresClientID(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/content/gb/popup/p-1/dismiss", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
