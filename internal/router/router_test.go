package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpcentre-io/helpcentre-api/internal/content/dismissal"
	"github.com/helpcentre-io/helpcentre-api/internal/handler"
	authHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/auth"
	catalogHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/catalog"
	noticeHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/notice"
	regionHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/region"
	searchHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/search"
	userHandler "github.com/helpcentre-io/helpcentre-api/internal/handler/user"
	"github.com/helpcentre-io/helpcentre-api/internal/middleware"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/repository/jsonstore"
	authService "github.com/helpcentre-io/helpcentre-api/internal/service/auth"
	catalogService "github.com/helpcentre-io/helpcentre-api/internal/service/catalog"
	noticeService "github.com/helpcentre-io/helpcentre-api/internal/service/notice"
	regionService "github.com/helpcentre-io/helpcentre-api/internal/service/region"
	searchService "github.com/helpcentre-io/helpcentre-api/internal/service/search"
	userService "github.com/helpcentre-io/helpcentre-api/internal/service/user"
	jwtauth "github.com/helpcentre-io/helpcentre-api/pkg/auth"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
	"github.com/helpcentre-io/helpcentre-api/pkg/security"
)

// The router registers prometheus collectors in the default registry, so the
// full stack is built once for the whole package.
var (
	buildOnce  sync.Once
	testEngine *gin.Engine
	adminToken string
	buildErr   error
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	buildOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		dir, err := os.MkdirTemp("", "helpcentre-router-test")
		if err != nil {
			buildErr = err
			return
		}

		store, err := jsonstore.New(dir)
		if err != nil {
			buildErr = err
			return
		}
		m := metrics.NewMetrics("test_router_app")

		regions := jsonstore.NewRegionStore(store)
		contents := jsonstore.NewContentStore(store, m)
		users := jsonstore.NewUserStore(filepath.Join(dir, "users.json"))

		ctx := context.Background()
		if err := regions.CreateRegion(ctx, &model.Region{
			Code: "uk-ireland",
			Countries: []model.Country{
				{Code: "gb", Name: "United Kingdom", Region: "uk-ireland"},
			},
		}); err != nil {
			buildErr = err
			return
		}

		hash, err := security.NewBcryptHasher(4).Hash("hunter2")
		if err != nil {
			buildErr = err
			return
		}

		jwtSvc := jwtauth.NewJWTService("test-secret", time.Hour)
		authSvc := authService.NewService(authService.Config{PasswordHash: hash, JWTSecret: "test-secret"}, jwtSvc)
		regionSvc := regionService.NewService(regions)
		catalogSvc := catalogService.NewService(regions, contents)
		noticeSvc := noticeService.NewService(regions, contents, dismissal.NewMemoryStore(), m)
		userSvc := userService.NewService(users)
		searchSvc := searchService.NewService(regions, contents, m)

		r := NewRouter(
			middleware.NewAuthMiddleware(authSvc),
			handler.NewHandler("test", nil),
			[]Handler{authHandler.NewHandler(authSvc), userHandler.NewHandler(userSvc)},
			[]AdminHandler{
				regionHandler.NewHandler(regionSvc),
				catalogHandler.NewHandler(catalogSvc),
				noticeHandler.NewHandler(noticeSvc),
				searchHandler.NewHandler(searchSvc),
			},
			Config{
				Timeout:       5 * time.Second,
				CORS:          middleware.DefaultCORSConfig(),
				MetricsPrefix: "test_router",
			},
		)
		r.Setup()
		testEngine = r.Engine()

		token, _, err := jwtSvc.GenerateAdminToken()
		if err != nil {
			buildErr = err
			return
		}
		adminToken = token
	})
	require.NoError(t, buildErr)
	return testEngine
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodGet, "/api/v1/health/live", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.0", w.Header().Get("X-API-Version"))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/health/ready", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/v1/health/metrics", "", nil).Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/v1/regions", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := testRouter(t)
	banners := []model.IncidentBanner{
		{ID: "b-1", State: "info", Title: "t", Scope: model.Scope{Type: "global"}, Active: true},
	}

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPut, "/api/v1/admin/uk-ireland/banners", "", banners).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPut, "/api/v1/admin/uk-ireland/banners", "garbage", banners).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/v1/admin/uk-ireland/banners", adminToken, banners).Code)
}

func TestPublishedContentIsServed(t *testing.T) {
	r := testRouter(t)

	products := []model.Product{{ID: "payroll", Name: "Payroll", Type: "cloud"}}
	require.Equal(t, http.StatusOK, do(r, http.MethodPut, "/api/v1/admin/uk-ireland/products", adminToken, products).Code)

	w := do(r, http.MethodGet, "/api/v1/content/gb/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "payroll")
}

func TestLoginThenUseToken(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodPost, "/api/v1/auth/login", "", gin.H{"password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	w = do(r, http.MethodPost, "/api/v1/admin/regions", resp.Data.Token, model.CreateRegionRequest{
		Code: "north-america",
		Name: "North America",
		Countries: []model.Country{
			{Code: "us", Name: "United States", Region: "north-america"},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUnknownCountryIs404(t *testing.T) {
	r := testRouter(t)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/config/zz", "", nil).Code)
}
