package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cultural-search-api/core/interfaces"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ interfaces.Metrics = (*Prometheus)(nil)
	_ interfaces.Metrics = Noop{}
)

func TestObserveSearch(t *testing.T) {
	p := NewPrometheus()

	p.ObserveSearch("fulltext", 30*time.Millisecond, 12)
	p.ObserveSearch("fulltext", 10*time.Millisecond, 0)
	p.ObserveSearch("ai", time.Second, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.searches.WithLabelValues("fulltext")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.searches.WithLabelValues("ai")))
	assert.Equal(t, 2, testutil.CollectAndCount(p.duration))
}

func TestFailureCounters(t *testing.T) {
	p := NewPrometheus()

	p.SourceFailed("cultural_entities")
	p.SourceFailed("cultural_entities")
	p.SourceFailed("cultural_resources")
	p.HintFailed("python")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.sourceFailures.WithLabelValues("cultural_entities")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.sourceFailures.WithLabelValues("cultural_resources")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.hintFailures.WithLabelValues("python")))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	p := NewPrometheus()
	p.ObserveSearch("ai", 5*time.Millisecond, 1)
	p.HintFailed("llm")

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `cultural_search_searches_total{kind="ai"} 1`)
	assert.Contains(t, string(body), `cultural_search_hint_failures_total{provider="llm"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewPrometheus()
	b := NewPrometheus()

	a.SourceFailed("x")

	assert.Equal(t, 0.0, testutil.ToFloat64(b.sourceFailures.WithLabelValues("x")))
}
