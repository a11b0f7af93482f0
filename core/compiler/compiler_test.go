package compiler_test

import (
	"context"
	"errors"
	"testing"

	"deck-finder/core/compiler"
	"deck-finder/core/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sliceSource struct {
	name    string
	records []deck.Record
	err     error
}

func (s sliceSource) Name() string { return s.name }

func (s sliceSource) Records(ctx context.Context, fn func(deck.Record) error) error {
	if s.err != nil {
		return s.err
	}
	for _, r := range s.records {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}

func rec(deckID, card string, qty int, board, category string) deck.Record {
	return deck.NewRecord(deckID, "Deck "+deckID, "legacy", "2024-01-01", nil, card, qty, board, category)
}

func TestCompile(t *testing.T) {
	records := []deck.Record{
		rec("1", "Lightning Bolt", 4, "mainboard", "Spells"),
		rec("1", "Mountain", 16, "mainboard", "Lands"),
		rec("1", "Lightning Bolt", 1, "Sideboard", ""),
		rec("1", "Pyroblast", 2, "commander", ""),
		rec("2", "lightning bolt", 4, "mainboard", "Burn"),
		rec("2", "Island", 4, "maybeboard", ""),
	}

	shard, report := compiler.Compile("legacy", records)

	require.Len(t, shard.Store, 2)
	doc := shard.Store["1"]
	require.NotNil(t, doc)
	assert.Equal(t, "Deck 1", doc.Name)
	assert.Equal(t, "legacy", doc.Format)

	cats := doc.Mainboard.Categories
	require.Len(t, cats, 3)
	assert.Equal(t, []string{"Spells", "Lands", deck.UnknownCategory}, []string{cats[0].Name, cats[1].Name, cats[2].Name})
	assert.Equal(t, []deck.RequiredItem{{CardName: "Pyroblast", Quantity: 2}}, cats[2].Items)
	assert.Equal(t, []deck.RequiredItem{{CardName: "Lightning Bolt", Quantity: 1}}, doc.Sideboard)
	assert.Empty(t, doc.Maybeboard)
	assert.NotNil(t, doc.Maybeboard)

	// Deck ids appear once per name even when the same deck lists the item on two boards.
	assert.Equal(t, []string{"1", "2"}, shard.Index["lightning bolt"])
	assert.Equal(t, []string{"1"}, shard.Index["mountain"])
	assert.Equal(t, []string{"2"}, shard.Index["island"])
	_, upper := shard.Index["Lightning Bolt"]
	assert.False(t, upper)

	assert.Equal(t, 6, report.Rows)
	assert.Equal(t, 2, report.Decks)
	assert.Equal(t, 4, report.Items)
	assert.Equal(t, []string{"mainboard", "maybeboard", "sideboard"}, report.Boards)
	assert.Equal(t, []string{"Burn", "Lands", "Spells", deck.UnknownCategory}, report.Categories)
}

func TestCompile_Empty(t *testing.T) {
	shard, report := compiler.Compile("empty", nil)
	assert.True(t, shard.IsEmpty())
	assert.Equal(t, "empty", shard.Name)
	assert.Zero(t, report.Rows)
}

func TestCompileAll(t *testing.T) {
	sources := []compiler.Source{
		sliceSource{name: "legacy", records: []deck.Record{rec("1", "Brainstorm", 4, "", "Cantrips")}},
		sliceSource{name: "empty"},
		sliceSource{name: "modern", records: []deck.Record{rec("9", "Brainstorm", 1, "sideboard", "")}},
	}

	results, err := compiler.CompileAll(context.Background(), sources, 2, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "legacy", results[0].Shard.Name)
	assert.Equal(t, []string{"1"}, results[0].Shard.Index["brainstorm"])
	assert.True(t, results[1].Shard.IsEmpty())
	assert.Equal(t, []string{"9"}, results[2].Shard.Index["brainstorm"])
}

func TestCompileAll_Error(t *testing.T) {
	boom := errors.New("cursor failed")
	sources := []compiler.Source{
		sliceSource{name: "ok", records: []deck.Record{rec("1", "Brainstorm", 4, "", "")}},
		sliceSource{name: "broken", err: boom},
	}

	results, err := compiler.CompileAll(context.Background(), sources, 0, zap.NewNop())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "broken")
	assert.Nil(t, results)
}
