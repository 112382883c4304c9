// ABOUTME: Prometheus implementation of the search metrics interface
// ABOUTME: Owns a private registry exposed through an HTTP handler for /metrics

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cultural_search"

// Prometheus records search metrics in its own registry
type Prometheus struct {
	registry       *prometheus.Registry
	searches       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	results        *prometheus.HistogramVec
	sourceFailures *prometheus.CounterVec
	hintFailures   *prometheus.CounterVec
}

// NewPrometheus creates and registers the search collectors. Go runtime and
// process collectors are registered as well.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Number of completed searches by kind.",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Search latency by kind.",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"kind"},
		),
		results: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_results",
				Help:      "Number of ranked results before pagination.",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 6),
			},
			[]string{"kind"},
		),
		sourceFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "source_failures_total",
				Help:      "Data source queries that failed and were skipped.",
			},
			[]string{"source"},
		),
		hintFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "hint_failures_total",
				Help:      "Hint provider calls that failed or timed out.",
			},
			[]string{"provider"},
		),
	}

	p.registry.MustRegister(
		p.searches,
		p.duration,
		p.results,
		p.sourceFailures,
		p.hintFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// ObserveSearch records one completed search
func (p *Prometheus) ObserveSearch(kind string, duration time.Duration, results int) {
	p.searches.WithLabelValues(kind).Inc()
	p.duration.WithLabelValues(kind).Observe(duration.Seconds())
	p.results.WithLabelValues(kind).Observe(float64(results))
}

// SourceFailed counts a failed data source query
func (p *Prometheus) SourceFailed(source string) {
	p.sourceFailures.WithLabelValues(source).Inc()
}

// HintFailed counts a failed hint provider call
func (p *Prometheus) HintFailed(provider string) {
	p.hintFailures.WithLabelValues(provider).Inc()
}

// Handler serves the registry in the Prometheus text format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Noop discards all metrics
type Noop struct{}

func (Noop) ObserveSearch(kind string, duration time.Duration, results int) {}
func (Noop) SourceFailed(source string)                                     {}
func (Noop) HintFailed(provider string)                                     {}
