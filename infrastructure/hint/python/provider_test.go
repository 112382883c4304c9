package python

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cultural-search-api/core/domain"
	coreerrors "cultural-search-api/core/errors"
	"cultural-search-api/infrastructure/http/retryable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewProvider(retryable.NewClient(retryable.Options{Timeout: 5 * time.Second}), server.URL+"/")
}

func TestHint_ParsesAnalysis(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai_search", r.URL.Path)
		assert.Equal(t, "春节 习俗", r.URL.Query().Get("q"))
		w.Write([]byte(`{"ai_analysis":{"keywords":["春节","年俗"],"search_query":"春节习俗"},"results":[]}`))
	})

	hint, err := p.Hint(context.Background(), "春节 习俗")

	require.NoError(t, err)
	assert.Equal(t, &domain.Hint{Keywords: []string{"春节", "年俗"}, SearchQuery: "春节习俗"}, hint)
}

func TestHint_NoAnalysis(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})

	hint, err := p.Hint(context.Background(), "春节")

	require.NoError(t, err)
	assert.Nil(t, hint)
}

func TestHint_ServerError(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model offline", http.StatusServiceUnavailable)
	})

	hint, err := p.Hint(context.Background(), "春节")

	assert.Nil(t, hint)
	require.True(t, coreerrors.IsExternalAPI(err))
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model offline")
}

func TestHint_MalformedJSON(t *testing.T) {
	p := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ai_analysis":`))
	})

	_, err := p.Hint(context.Background(), "春节")

	assert.Error(t, err)
}

func TestHint_Unreachable(t *testing.T) {
	p := NewProvider(retryable.NewClient(retryable.Options{Timeout: time.Second}), "http://127.0.0.1:1")

	_, err := p.Hint(context.Background(), "春节")

	assert.Error(t, err)
}
