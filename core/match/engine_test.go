package match_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"deck-finder/core/compiler"
	"deck-finder/core/deck"
	"deck-finder/core/inventory"
	"deck-finder/core/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(deckID, name, format, card string, qty int, board, category string) deck.Record {
	return deck.NewRecord(deckID, name, format, "2024-05-01", nil, card, qty, board, category)
}

// burn requires 4 Lightning Bolt + 4 Island + 1 Forest.
func burnRecords() []deck.Record {
	return []deck.Record{
		rec("1", "Burn", "legacy", "Lightning Bolt", 4, "mainboard", "Spells"),
		rec("1", "Burn", "legacy", "Island", 4, "mainboard", "Lands"),
		rec("1", "Burn", "legacy", "Forest", 1, "sideboard", ""),
	}
}

func engineFor(records ...deck.Record) *match.Engine {
	shard, _ := compiler.Compile("test", records)
	holder := &match.Holder{}
	holder.Publish(match.NewSnapshot(shard, time.Now()))
	return match.NewEngine(holder)
}

func TestSearch_BelowThresholdExcluded(t *testing.T) {
	engine := engineFor(burnRecords()...)

	res, err := engine.Search(inventory.Parse("4 Lightning Bolt\n1 Island"), "legacy")
	require.NoError(t, err)

	// 5 of 9 -> 55.56
	assert.Empty(t, res.Exact)
	assert.Empty(t, res.Partial)
	assert.Equal(t, 1, res.Stats.BelowThreshold)
}

func TestSearch_PartialMatch(t *testing.T) {
	engine := engineFor(burnRecords()...)

	res, err := engine.Search(inventory.Parse("4 Lightning Bolt\n4 Island"), "legacy")
	require.NoError(t, err)

	assert.Empty(t, res.Exact)
	require.Len(t, res.Partial, 1)

	m := res.Partial[0]
	assert.Equal(t, "88.89", m.Percentage)
	assert.InDelta(t, 800.0/9.0, m.Score, 1e-9)
	assert.Equal(t, 2, m.Hits)

	spells := m.Mainboard.Categories[0]
	assert.Equal(t, "Spells", spells.Name)
	assert.Equal(t, []match.Item{{CardName: "Lightning Bolt", Quantity: 4, Missing: 0}}, spells.Items)
	assert.Equal(t, []match.Item{{CardName: "Island", Quantity: 4, Missing: 0}}, m.Mainboard.Categories[1].Items)
	assert.Equal(t, []match.Item{{CardName: "Forest", Quantity: 1, Missing: 1}}, m.Sideboard)
	assert.Empty(t, m.Maybeboard)
}

func TestSearch_ExactMatch(t *testing.T) {
	engine := engineFor(burnRecords()...)

	res, err := engine.Search(inventory.Parse("8 lightning bolt\n4 ISLAND\nForest"), "LEGACY")
	require.NoError(t, err)

	require.Len(t, res.Exact, 1)
	assert.Empty(t, res.Partial)
	assert.Equal(t, "100.00", res.Exact[0].Percentage)
	for _, cat := range res.Exact[0].Mainboard.Categories {
		for _, it := range cat.Items {
			assert.Zero(t, it.Missing)
		}
	}
}

func TestSearch_RoundsToExact(t *testing.T) {
	// 99999 of 100000 renders as 100.00 and is bucketed as exact.
	engine := engineFor(
		rec("1", "Big", "legacy", "Relentless Rats", 99999, "mainboard", "Rats"),
		rec("1", "Big", "legacy", "Swamp", 1, "mainboard", "Lands"),
	)

	res, err := engine.Search(inventory.Parse("99999 Relentless Rats"), "legacy")
	require.NoError(t, err)
	require.Len(t, res.Exact, 1)
	assert.Less(t, res.Exact[0].Score, 100.0)
}

func TestSearch_ThresholdInclusive(t *testing.T) {
	engine := engineFor(
		rec("1", "Seventy", "modern", "A", 7, "mainboard", "Main"),
		rec("1", "Seventy", "modern", "B", 3, "mainboard", "Main"),
	)

	res, err := engine.Search(inventory.Parse("7 A"), "modern")
	require.NoError(t, err)
	require.Len(t, res.Partial, 1)
	assert.Equal(t, "70.00", res.Partial[0].Percentage)
}

func TestSearch_FormatFilter(t *testing.T) {
	engine := engineFor(
		rec("1", "Legacy Deck", "Legacy", "Brainstorm", 4, "", ""),
		rec("2", "Modern Deck", "modern", "Brainstorm", 4, "", ""),
		rec("3", "No Format", "", "Brainstorm", 4, "", ""),
	)

	res, err := engine.Search(inventory.Parse("4 Brainstorm"), "legacy")
	require.NoError(t, err)

	require.Len(t, res.Exact, 1)
	assert.Equal(t, "1", res.Exact[0].DeckID)
	assert.Equal(t, 3, res.Stats.Candidates)
	assert.Equal(t, 1, res.Stats.WrongFormat)
	assert.Equal(t, 1, res.Stats.Skipped)
}

func TestSearch_ZeroRequired(t *testing.T) {
	engine := engineFor(rec("1", "Empty", "legacy", "Brainstorm", 0, "", ""))

	res, err := engine.Search(inventory.Parse("4 Brainstorm"), "legacy")
	require.NoError(t, err)
	assert.Empty(t, res.Exact)
	assert.Empty(t, res.Partial)
	assert.Equal(t, "0.00", match.Score(&deck.Document{}, inventory.Inventory{}).Percentage)
}

func TestSearch_EmptyInventory(t *testing.T) {
	engine := engineFor(burnRecords()...)

	res, err := engine.Search(inventory.Inventory{}, "legacy")
	require.NoError(t, err)
	assert.Empty(t, res.Exact)
	assert.Empty(t, res.Partial)
	assert.NotNil(t, res.Exact)
	assert.NotNil(t, res.Partial)
}

func TestScore_MissingCountedPerItem(t *testing.T) {
	shard, _ := compiler.Compile("test", []deck.Record{
		rec("1", "Dup", "legacy", "Island", 4, "mainboard", "Lands"),
		rec("1", "Dup", "legacy", "Island", 2, "mainboard", "Lands"),
	})

	m := match.Score(shard.Store["1"], inventory.Parse("3 Island"))

	// Rows are not coalesced, each entry is scored against the full inventory.
	assert.Equal(t, []match.Item{
		{CardName: "Island", Quantity: 4, Missing: 1},
		{CardName: "Island", Quantity: 2, Missing: 0},
	}, m.Mainboard.Categories[0].Items)
	assert.Equal(t, "83.33", m.Percentage)
}

func TestScore_LegacyCategories(t *testing.T) {
	doc := &deck.Document{
		DeckID: "1",
		Format: "legacy",
		LegacyCategories: deck.Categories{
			{Name: "Lands", Items: []deck.RequiredItem{{CardName: "Island", Quantity: 2}}},
		},
	}

	m := match.Score(doc, inventory.Parse("1 Island"))
	require.Len(t, m.Mainboard.Categories, 1)
	assert.Equal(t, 1, m.Mainboard.Categories[0].Items[0].Missing)
	assert.Equal(t, "50.00", m.Percentage)
}

func TestSearch_Ordering(t *testing.T) {
	engine := engineFor(
		rec("1", "Zoo", "legacy", "Bolt", 4, "", ""),
		rec("2", "Aggro", "legacy", "Bolt", 4, "", ""),
		rec("3", "Aggro", "legacy", "Bolt", 4, "", ""),
		rec("4", "Eighty", "legacy", "Bolt", 4, "", ""),
		rec("4", "Eighty", "legacy", "Other", 1, "", ""),
		rec("5", "Ninety", "legacy", "Bolt", 9, "", ""),
		rec("5", "Ninety", "legacy", "Other", 1, "", ""),
	)

	res, err := engine.Search(inventory.Parse("9 Bolt"), "legacy")
	require.NoError(t, err)

	exact := make([]string, 0, len(res.Exact))
	for _, m := range res.Exact {
		exact = append(exact, m.DeckID)
	}
	assert.Equal(t, []string{"2", "3", "1"}, exact)

	require.Len(t, res.Partial, 2)
	assert.Equal(t, "5", res.Partial[0].DeckID)
	assert.Equal(t, "4", res.Partial[1].DeckID)
}

func TestSearch_Properties(t *testing.T) {
	var records []deck.Record
	for i := 0; i < 30; i++ {
		id := string(rune('A' + i%26))
		if i >= 26 {
			id += "2"
		}
		records = append(records,
			rec(id, "Deck "+id, "pauper", "Lightning Bolt", 4, "mainboard", "Spells"),
			rec(id, "Deck "+id, "pauper", "Mountain", 10+i, "mainboard", "Lands"),
			rec(id, "Deck "+id, "pauper", "Pyroblast", i%4, "sideboard", ""),
		)
	}
	engine := engineFor(records...)
	inv := inventory.Parse("4 Lightning Bolt\n30 Mountain\n2 Pyroblast")

	res, err := engine.Search(inv, "pauper")
	require.NoError(t, err)

	for _, m := range res.Exact {
		assert.Equal(t, "100.00", m.Percentage)
	}
	for _, m := range res.Partial {
		assert.GreaterOrEqual(t, m.Score, 70.0)
		assert.Less(t, m.Score, 100.0)
		assert.NotEqual(t, "100.00", m.Percentage)
	}
	for _, m := range append(res.Exact, res.Partial...) {
		items := append([]match.Item{}, m.Sideboard...)
		for _, c := range m.Mainboard.Categories {
			items = append(items, c.Items...)
		}
		for _, it := range items {
			assert.Equal(t, max(0, it.Quantity-inv[deck.NormalizeName(it.CardName)]), it.Missing)
		}
	}
}

func TestSearch_NoSnapshot(t *testing.T) {
	engine := match.NewEngine(&match.Holder{})

	_, err := engine.Search(inventory.Parse("1 Island"), "legacy")
	assert.ErrorIs(t, err, match.ErrNoSnapshot)
}

func TestSearch_ConcurrentWithPublish(t *testing.T) {
	shard, _ := compiler.Compile("test", burnRecords())
	holder := &match.Holder{}
	holder.Publish(match.NewSnapshot(shard, time.Now()))
	engine := match.NewEngine(holder)
	inv := inventory.Parse("4 Lightning Bolt\n4 Island")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				res, err := engine.Search(inv, "legacy")
				assert.NoError(t, err)
				assert.Len(t, res.Partial, 1)
			}
		}()
	}
	for i := 0; i < 20; i++ {
		fresh, _ := compiler.Compile("test", burnRecords())
		holder.Publish(match.NewSnapshot(fresh, time.Now()))
	}
	wg.Wait()
}

func TestResult_JSON(t *testing.T) {
	engine := engineFor(burnRecords()...)
	res, err := engine.Search(inventory.Parse("4 Lightning Bolt\n4 Island"), "legacy")
	require.NoError(t, err)

	b, err := json.Marshal(res)
	require.NoError(t, err)

	var raw map[string][]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Len(t, raw["decks70"], 1)
	assert.Empty(t, raw["decks100"])
	assert.JSONEq(t, `"88.89"`, string(raw["decks70"][0]["percentage"]))
	assert.JSONEq(t, `{"categories":{"Spells":[{"card_name":"Lightning Bolt","quantity":4,"missing":0}],"Lands":[{"card_name":"Island","quantity":4,"missing":0}]}}`, string(raw["decks70"][0]["mainboard"]))
	assert.Contains(t, string(b), `"mainboard":{"categories":{"Spells"`)
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"HalfRoundsUp", 561.0 * 100 / 800, "70.13"},
		{"Exact", 100, "100.00"},
		{"Zero", 0, "0.00"},
		{"Repeating", 5.0 * 100 / 9, "55.56"},
		{"BelowHalf", 70.124, "70.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, match.FormatPercentage(tt.pct))
		})
	}
}
