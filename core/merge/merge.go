package merge

import "deck-finder/core/deck"

// CatalogName is the shard name of a merged catalog.
const CatalogName = "catalog"

// Collision records a deck id present in more than one shard.
type Collision struct {
	DeckID string
	Kept   string
	Lost   string
}

// Merge unifies shards in the given order.
func Merge(shards ...deck.Shard) deck.Shard {
	out, _ := MergeWithCollisions(shards...)
	return out
}

// MergeWithCollisions behaves like Merge and also reports overwritten deck ids.
func MergeWithCollisions(shards ...deck.Shard) (deck.Shard, []Collision) {
	out := deck.NewShard(CatalogName)
	owner := make(map[string]string)
	var collisions []Collision

	for _, s := range shards {
		for id, doc := range s.Store {
			if prev, ok := owner[id]; ok {
				collisions = append(collisions, Collision{DeckID: id, Kept: s.Name, Lost: prev})
			}
			owner[id] = s.Name
			out.Store[id] = doc
		}
	}

	out.Index = MergeIndexes(indexes(shards)...)
	return out, collisions
}

// MergeIndexes returns the per-name deduplicated union of the given indexes.
func MergeIndexes(parts ...deck.Index) deck.Index {
	out := make(deck.Index)
	seen := make(map[string]map[string]struct{})

	for _, idx := range parts {
		for name, ids := range idx {
			set, ok := seen[name]
			if !ok {
				set = make(map[string]struct{}, len(ids))
				seen[name] = set
			}
			for _, id := range ids {
				if _, dup := set[id]; dup {
					continue
				}
				set[id] = struct{}{}
				out[name] = append(out[name], id)
			}
		}
	}
	return out
}

func indexes(shards []deck.Shard) []deck.Index {
	out := make([]deck.Index, len(shards))
	for i, s := range shards {
		out[i] = s.Index
	}
	return out
}
