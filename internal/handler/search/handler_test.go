package search

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository/jsonstore"
	searchService "github.com/helpcentre-io/helpcentre-api/internal/service/search"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("test_search_handler")

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	regions := jsonstore.NewRegionStore(store)
	require.NoError(t, regions.CreateRegion(context.Background(), &model.Region{
		Code: "uk-ireland",
		Countries: []model.Country{
			{Code: "gb", Name: "United Kingdom", Region: "uk-ireland"},
		},
	}))

	contents := jsonstore.NewContentStore(store, nil)
	require.NoError(t, contents.SaveArticles(context.Background(), "uk-ireland", []model.SearchDocument{
		{ID: "a", Title: "payroll", Summary: "run payroll"},
		{ID: "b", Title: "payroll year end", ProductID: "payroll"},
		{ID: "c", Title: "invoicing"},
	}))

	svc := searchService.NewService(regions, contents, testMetrics)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestSearchPost(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(model.SearchRequest{Query: "payroll", Limit: 1})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search/gb", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.SearchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
	require.Len(t, resp.Data.Hits, 1)
	assert.Equal(t, "a", resp.Data.Hits[0].Document.ID)
	assert.True(t, resp.Data.HasMore)
}

func TestSearchGetQueryParams(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search/gb?q=payroll&limit=1&offset=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.SearchResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Hits, 1)
	assert.Equal(t, "b", resp.Data.Hits[0].Document.ID)
	assert.False(t, resp.Data.HasMore)
}

func TestSearchGetRejectsBadPagination(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search/gb?q=x&limit=nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchUnknownCountryIs404(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/search/zz?q=payroll", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
