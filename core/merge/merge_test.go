package merge_test

import (
	"testing"

	"deck-finder/core/compiler"
	"deck-finder/core/deck"
	"deck-finder/core/merge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(deckID, format, card string, qty int) deck.Record {
	return deck.NewRecord(deckID, "Deck "+deckID, format, "", nil, card, qty, "mainboard", "Main")
}

func shards() []deck.Shard {
	legacy, _ := compiler.Compile("legacy", []deck.Record{
		rec("1", "legacy", "Lightning Bolt", 4),
		rec("1", "legacy", "Island", 4),
		rec("2", "legacy", "Lightning Bolt", 4),
	})
	modern, _ := compiler.Compile("modern", []deck.Record{
		rec("3", "modern", "Lightning Bolt", 4),
		rec("3", "modern", "Ragavan, Nimble Pilferer", 4),
	})
	return []deck.Shard{legacy, modern}
}

func TestMerge(t *testing.T) {
	merged := merge.Merge(shards()...)

	assert.Equal(t, merge.CatalogName, merged.Name)
	assert.Len(t, merged.Store, 3)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, merged.Index["lightning bolt"])
	assert.Equal(t, []string{"1"}, merged.Index["island"])
	assert.Equal(t, []string{"3"}, merged.Index["ragavan, nimble pilferer"])
}

func TestMerge_SingleShardIsIdentity(t *testing.T) {
	s := shards()[0]
	merged := merge.Merge(s)

	assert.Equal(t, s.Store, merged.Store)
	assert.Equal(t, s.Index, merged.Index)
}

func TestMerge_Idempotent(t *testing.T) {
	s := shards()[0]

	once := merge.MergeIndexes(s.Index)
	twice := merge.MergeIndexes(s.Index, s.Index)
	assert.Equal(t, once, twice)
}

func TestMerge_OrderIndependent(t *testing.T) {
	all := shards()
	forward := merge.Merge(all[0], all[1])
	backward := merge.Merge(all[1], all[0])

	assert.Equal(t, forward.Store, backward.Store)
	require.Len(t, backward.Index, len(forward.Index))
	for name, ids := range forward.Index {
		assert.ElementsMatch(t, ids, backward.Index[name], name)
	}
}

func TestMerge_CollisionLastWriterWins(t *testing.T) {
	a, _ := compiler.Compile("a", []deck.Record{rec("1", "legacy", "Brainstorm", 4)})
	b, _ := compiler.Compile("b", []deck.Record{rec("1", "vintage", "Black Lotus", 1)})

	merged, collisions := merge.MergeWithCollisions(a, b)

	require.Len(t, collisions, 1)
	assert.Equal(t, merge.Collision{DeckID: "1", Kept: "b", Lost: "a"}, collisions[0])
	assert.Equal(t, "vintage", merged.Store["1"].Format)
	// The index still points both names at the surviving id.
	assert.Equal(t, []string{"1"}, merged.Index["brainstorm"])
	assert.Equal(t, []string{"1"}, merged.Index["black lotus"])
}

func TestMerge_Empty(t *testing.T) {
	merged := merge.Merge(deck.NewShard("empty"), deck.NewShard("also-empty"))
	assert.True(t, merged.IsEmpty())

	merged = merge.Merge()
	assert.True(t, merged.IsEmpty())
}
