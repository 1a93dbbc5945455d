package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-agency-backend/config"
	v1 "go-agency-backend/internal/delivery/http/v1"
	"go-agency-backend/internal/domain"
	"go-agency-backend/internal/usecase"
	"go-agency-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubContactUC lets each test dictate the pipeline outcome.
type stubContactUC struct {
	err    error
	called int
}

func (s *stubContactUC) SubmitContact(ctx context.Context, sub *domain.Submission) error {
	s.called++
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                      "8080",
		SiteURL:                   "https://www.novaforge.studio",
		FrontendURL:               "http://localhost:3000",
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 100,
		RateLimitGlobalThreshold:  1000,
	}
}

func newTestRouter(contactUC domain.ContactUsecase, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		SEOUC:     usecase.NewSEOUsecase(cfg.SiteURL),
		HealthUC:  usecase.NewHealthUsecase("log"),
		Config:    cfg,
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitContactSuccess(t *testing.T) {
	stub := &stubContactUC{}
	router := newTestRouter(stub, testConfig())

	w := postContact(router, `{
		"name": "Jane Doe",
		"email": "jane@co.com",
		"service": "AI",
		"budget": "$10K-$25K",
		"message": "We need a 20+ character project description here."
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, stub.called)

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestSubmitContactValidationFailure(t *testing.T) {
	stub := &stubContactUC{err: &domain.ValidationError{Fields: domain.FieldErrors{
		"name":    "Please enter your name.",
		"email":   "Please enter a valid email address.",
		"message": "Your message should be at least 20 characters.",
		"service": "Please select a service.",
		"budget":  "Please select a budget range.",
	}}}
	router := newTestRouter(stub, testConfig())

	w := postContact(router, `{"name":"", "email":"bad", "message":"short"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Len(t, resp.Errors, 5)
	assert.Contains(t, resp.Errors, "name")
	assert.Contains(t, resp.Errors, "budget")
}

func TestSubmitContactMalformedBody(t *testing.T) {
	stub := &stubContactUC{}
	router := newTestRouter(stub, testConfig())

	w := postContact(router, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.called, "the pipeline must not run for a malformed body")

	// Malformed input earns a generic message, never parser internals.
	assert.NotContains(t, w.Body.String(), "unexpected EOF")
}

func TestSubmitContactMailerNotConfigured(t *testing.T) {
	stub := &stubContactUC{err: mailer.ErrNotConfigured}
	router := newTestRouter(stub, testConfig())

	w := postContact(router, `{"name":"Jane"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubmitContactTransportFailureIsOpaque(t *testing.T) {
	stub := &stubContactUC{err: assert.AnError}
	router := newTestRouter(stub, testConfig())

	w := postContact(router, `{"name":"Jane"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestContactRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitContactThreshold = 2
	router := newTestRouter(&stubContactUC{}, cfg)

	body := `{"name":"Jane"}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", "198.51.100.7")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.NotEqual(t, http.StatusTooManyRequests, w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "198.51.100.7")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubContactUC{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSitemapRoute(t *testing.T) {
	router := newTestRouter(&stubContactUC{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<urlset")
}

func TestRobotsRoute(t *testing.T) {
	router := newTestRouter(&stubContactUC{}, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap:")
}
