package contact

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
	contactService "github.com/helpcentre-io/helpcentre-api/internal/service/contact"
)

type capturingMailer struct {
	to      string
	subject string
	body    string
}

func (m *capturingMailer) Send(_ context.Context, to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *capturingMailer) {
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
	require.NoError(t, regions.SaveSiteConfig(ctx, "uk-ireland", &model.SiteConfig{
		SupportEmail: "support@example.com",
	}))

	contents := jsonstore.NewContentStore(store, nil)
	require.NoError(t, contents.SaveContactMethods(ctx, "uk-ireland", []model.ContactMethod{
		{ID: "phone", Type: "phone", Label: "Call us", Value: "0800 111 222"},
		{ID: "chat-accountants", Type: "chat", Label: "Accountant chat", Personas: []string{"accountant"}},
	}))

	mailer := &capturingMailer{}
	svc := contactService.NewService(regions, contents, mailer)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, mailer
}

func TestListMethodsByPersona(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/content/gb/contact-methods?persona=customer", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.ContactMethod `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "phone", resp.Data[0].ID)
}

func TestSubmitFormRelaysToSupport(t *testing.T) {
	r, mailer := newTestRouter(t)

	body, _ := json.Marshal(gin.H{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Payslip question",
		"message": "Where do I find last month's payslips?",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/gb/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "support@example.com", mailer.to)
	assert.Equal(t, "Payslip question", mailer.subject)
	assert.Contains(t, mailer.body, "ada@example.com")
}

func TestSubmitFormValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/content/gb/contact", bytes.NewReader([]byte(`{"name":"Ada"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
