package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cultural-search-api/api/middleware"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

type pingOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func registerPing(api huma.API) {
	huma.Get(api, "/ping", func(ctx context.Context, input *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		out.Body.OK = true
		return out, nil
	})
}

func TestNewAPI_Info(t *testing.T) {
	api, router := NewAPI(APIConfig{})

	require.NotNil(t, router)
	assert.Equal(t, "Cultural Search API", api.OpenAPI().Info.Title)
	assert.Equal(t, "1.0.0", api.OpenAPI().Info.Version)
}

func TestNewAPI_ServesOpenAPI(t *testing.T) {
	_, router := NewAPI(APIConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewAPI_CORS(t *testing.T) {
	api, router := NewAPI(APIConfig{CORSOrigins: []string{"http://localhost:5173"}})
	registerPing(api)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPI_Middleware(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 1)
	defer limiter.Stop()
	api, router := NewAPI(APIConfig{Logger: nopLogger{}, RateLimiter: limiter})
	registerPing(api)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
