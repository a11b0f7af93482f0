package enrich_test

import (
	"context"
	"errors"
	"testing"

	"deck-finder/core/database"
	"deck-finder/core/enrich"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupShard(t *testing.T, withColors bool) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	decks := "CREATE TABLE decks (deck_id INTEGER PRIMARY KEY, deck_name TEXT, formato TEXT, updated_at TEXT"
	if withColors {
		decks += ", colors TEXT"
	}
	decks += ")"

	stmts := []string{
		decks,
		"CREATE TABLE cartas (card_id INTEGER PRIMARY KEY, card_name TEXT)",
		"CREATE TABLE deck_cartas (deck_id INTEGER, card_id INTEGER, quantity INTEGER, board TEXT, category TEXT)",
		"INSERT INTO cartas VALUES (1, 'Lightning Bolt'), (2, 'Counterspell'), (3, 'Forest'), (4, 'Golgari Charm'), (5, 'Broken'), (6, 'Swords to Plowshares')",
		"INSERT INTO decks (deck_id, deck_name, formato) VALUES (1, 'Izzet', 'legacy'), (2, 'Lands', 'legacy'), (3, 'Rock', 'modern')",
		// Izzet: bolt twice across boards, counterspell.
		"INSERT INTO deck_cartas VALUES (1, 1, 4, 'mainboard', 'Spells'), (1, 2, 4, 'mainboard', 'Spells'), (1, 1, 1, 'sideboard', NULL)",
		"INSERT INTO deck_cartas VALUES (2, 3, 20, 'mainboard', 'Lands')",
		// Rock: chunk size 2 puts Broken with Swords in the second chunk.
		"INSERT INTO deck_cartas VALUES (3, 4, 4, 'mainboard', NULL), (3, 3, 4, 'mainboard', NULL), (3, 5, 1, 'mainboard', NULL), (3, 6, 1, 'mainboard', NULL)",
	}
	for _, s := range stmts {
		require.NoError(t, db.Exec(s).Error)
	}
	return db
}

func deckColors(t *testing.T, db *gorm.DB) map[int]string {
	t.Helper()
	var rows []struct {
		DeckID int
		Colors *string
	}
	require.NoError(t, db.Raw("SELECT deck_id, colors FROM decks").Scan(&rows).Error)

	out := make(map[int]string)
	for _, r := range rows {
		if r.Colors == nil {
			out[r.DeckID] = "<nil>"
			continue
		}
		out[r.DeckID] = *r.Colors
	}
	return out
}

func TestJob_Run(t *testing.T) {
	srv := newScryfall(t)
	db := setupShard(t, false)
	client := enrich.NewScryfallClient(testConfig(srv.URL))

	summary, err := enrich.NewJob("legacy", db, client, 2, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, enrich.Summary{Shard: "legacy", Pending: 3, Updated: 3, FailedChunks: 1}, summary)

	ok, err := database.HasColumn(db, "decks", "colors")
	require.NoError(t, err)
	assert.True(t, ok, "colors column added")

	colors := deckColors(t, db)
	assert.Equal(t, "UR", colors[1])
	assert.Equal(t, "", colors[2], "colourless deck stores an empty string")
	// The failed chunk (Broken, Swords) contributes nothing.
	assert.Equal(t, "BG", colors[3])

	// Repeated names are looked up once.
	for _, req := range srv.Requests() {
		seen := map[string]bool{}
		for _, n := range req {
			assert.False(t, seen[n], "duplicate %q in request", n)
			seen[n] = true
		}
		assert.LessOrEqual(t, len(req), 2)
	}
}

func TestJob_SkipsEnrichedDecks(t *testing.T) {
	srv := newScryfall(t)
	db := setupShard(t, true)
	require.NoError(t, db.Exec("UPDATE decks SET colors = 'G' WHERE deck_id = 2").Error)
	require.NoError(t, db.Exec("UPDATE decks SET colors = '' WHERE deck_id = 3").Error)

	client := enrich.NewScryfallClient(testConfig(srv.URL))
	summary, err := enrich.NewJob("legacy", db, client, 75, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Pending, "NULL and empty colours are pending")
	colors := deckColors(t, db)
	assert.Equal(t, "G", colors[2])
	assert.Equal(t, "UR", colors[1])

	// Deck 3 has one chunk of four names including Broken, so it fails entirely.
	assert.Equal(t, "", colors[3])
	assert.Equal(t, 1, summary.FailedChunks)
}

func TestJob_NothingPending(t *testing.T) {
	db := setupShard(t, true)
	require.NoError(t, db.Exec("UPDATE decks SET colors = 'W'").Error)

	lookup := new(mockLookup)
	summary, err := enrich.NewJob("legacy", db, lookup, 75, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.Pending)
	lookup.AssertNotCalled(t, "Collection", mock.Anything, mock.Anything)
}

type mockLookup struct {
	mock.Mock
}

func (m *mockLookup) Collection(ctx context.Context, names []string) ([]enrich.Card, error) {
	args := m.Called(ctx, names)
	cards, _ := args.Get(0).([]enrich.Card)
	return cards, args.Error(1)
}

func TestJob_LookupFailuresAreNotFatal(t *testing.T) {
	db := setupShard(t, true)

	lookup := new(mockLookup)
	lookup.On("Collection", mock.Anything, mock.Anything).Return(nil, errors.New("network down"))

	summary, err := enrich.NewJob("legacy", db, lookup, 75, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Updated)
	assert.Equal(t, 3, summary.FailedChunks)
}

func TestJob_ContextCanceled(t *testing.T) {
	db := setupShard(t, true)
	lookup := new(mockLookup)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := enrich.NewJob("legacy", db, lookup, 75, zap.NewNop()).Run(ctx)
	assert.Error(t, err)
}
