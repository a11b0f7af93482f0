package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"deck-finder/core/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ObserveSearch(t *testing.T) {
	r := metrics.NewRegistry()

	r.ObserveSearch(metrics.OutcomeOK, 5*time.Millisecond, 2, 3, 1)
	r.ObserveSearch(metrics.OutcomeInvalid, 0, 0, 0, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.SearchRequests.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SearchRequests.WithLabelValues(metrics.OutcomeInvalid)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.SearchMatches.WithLabelValues("exact")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.SearchMatches.WithLabelValues("partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.SearchSkipped))
}

func TestRegistry_ObserveCatalog(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveCatalog(10, 250, time.Unix(1700000000, 0))
	r.ObserveReload(nil)
	r.ObserveReload(errors.New("boom"))

	assert.Equal(t, 10.0, testutil.ToFloat64(r.CatalogDecks))
	assert.Equal(t, 250.0, testutil.ToFloat64(r.CatalogItems))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(r.CatalogBuiltAt))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CatalogReloads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CatalogReloads.WithLabelValues("error")))
}

func TestRegistry_Handler(t *testing.T) {
	r := metrics.NewRegistry()
	r.ObserveCatalog(3, 4, time.Now())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "deckfinder_catalog_decks 3"))
}
