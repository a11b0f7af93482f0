package integrity

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"deck-finder/core/artifact"
	"deck-finder/core/deck"
	"deck-finder/core/merge"
	"deck-finder/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, apiKey string) (*fiber.App, *artifact.FileRepository) {
	repo := artifact.NewFileRepository(t.TempDir())
	feature := NewFeature(repo, zap.NewNop(), apiKey)

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, repo
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, repo := setupTestApp(t, "")

	shard := deck.NewShard("legacy")
	shard.Store["1"] = &deck.Document{DeckID: "1", Format: "legacy"}
	require.NoError(t, repo.SaveShard(context.Background(), shard))
	require.NoError(t, repo.SaveCatalog(context.Background(), merge.Merge(shard)))

	for _, path := range []string{"/api/integrity", "/api/integrity/artifacts"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode, path)

		var report checks.ArtifactReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, checks.StatusOK, report.Status)
		assert.Len(t, report.Shards, 1)
		assert.Equal(t, 1, report.Catalog.Decks)
	}
}

func TestHandleIntegrityCheck_Degraded(t *testing.T) {
	app, _ := setupTestApp(t, "")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report checks.ArtifactReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusDegraded, report.Status)
	assert.Equal(t, checks.StatusError, report.Catalog.Status)
}

func TestHandleIntegrityCheck_RequiresKey(t *testing.T) {
	app, _ := setupTestApp(t, "secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	req := httptest.NewRequest("GET", "/api/integrity", nil)
	req.Header.Set("X-API-Key", "secret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(artifact.NewFileRepository(t.TempDir()), zap.NewNop(), "")

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
