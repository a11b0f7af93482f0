package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
)

// Registry holds the service metrics on a private prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	SearchRequests *prometheus.CounterVec
	SearchLatency  prometheus.Histogram
	SearchMatches  *prometheus.CounterVec
	SearchSkipped  prometheus.Counter

	CatalogDecks   prometheus.Gauge
	CatalogItems   prometheus.Gauge
	CatalogBuiltAt prometheus.Gauge
	CatalogReloads *prometheus.CounterVec
}

// NewRegistry creates and registers every metric.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deckfinder_search_requests_total",
		Help: "Search requests by outcome.",
	}, []string{"outcome"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deckfinder_search_latency_seconds",
		Help:    "Time spent matching one inventory.",
		Buckets: prometheus.DefBuckets,
	})
	matches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deckfinder_search_matches_total",
		Help: "Decks returned by bucket.",
	}, []string{"bucket"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deckfinder_search_skipped_documents_total",
		Help: "Candidate documents skipped for missing fields.",
	})

	decks := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deckfinder_catalog_decks",
		Help: "Decks in the published catalog.",
	})
	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deckfinder_catalog_items",
		Help: "Distinct item names in the published catalog.",
	})
	builtAt := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "deckfinder_catalog_published_timestamp_seconds",
		Help: "Unix time the published catalog was loaded.",
	})
	reloads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "deckfinder_catalog_reloads_total",
		Help: "Catalog reloads by result.",
	}, []string{"result"})

	r.MustRegister(requests, latency, matches, skipped, decks, items, builtAt, reloads)
	return &Registry{
		reg:            r,
		SearchRequests: requests,
		SearchLatency:  latency,
		SearchMatches:  matches,
		SearchSkipped:  skipped,
		CatalogDecks:   decks,
		CatalogItems:   items,
		CatalogBuiltAt: builtAt,
		CatalogReloads: reloads,
	}
}

// ObserveSearch records one search request.
func (r *Registry) ObserveSearch(outcome string, elapsed time.Duration, exact, partial, skipped int) {
	r.SearchRequests.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	r.SearchLatency.Observe(elapsed.Seconds())
	r.SearchMatches.WithLabelValues("exact").Add(float64(exact))
	r.SearchMatches.WithLabelValues("partial").Add(float64(partial))
	r.SearchSkipped.Add(float64(skipped))
}

// ObserveCatalog records a published catalog.
func (r *Registry) ObserveCatalog(decks, items int, builtAt time.Time) {
	r.CatalogDecks.Set(float64(decks))
	r.CatalogItems.Set(float64(items))
	r.CatalogBuiltAt.Set(float64(builtAt.Unix()))
}

// ObserveReload records a reload attempt.
func (r *Registry) ObserveReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.CatalogReloads.WithLabelValues(result).Inc()
}

// Handler exposes the registry in the prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
