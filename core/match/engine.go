package match

import (
	"sort"

	"deck-finder/core/deck"
	"deck-finder/core/inventory"
)

// Engine runs searches against the snapshot currently held.
type Engine struct {
	holder *Holder
}

// NewEngine creates an engine reading from holder.
func NewEngine(holder *Holder) *Engine {
	return &Engine{holder: holder}
}

// Search returns the decks of the given format that inv completes to at
// least Threshold percent.
func (e *Engine) Search(inv inventory.Inventory, format string) (Result, error) {
	snap := e.holder.Current()
	if snap == nil {
		return Result{}, ErrNoSnapshot
	}
	return SearchSnapshot(snap, inv, format), nil
}

// SearchSnapshot runs a search against a specific snapshot.
func SearchSnapshot(snap *Snapshot, inv inventory.Inventory, format string) Result {
	hits := candidates(snap.Index, inv)

	ids := make([]string, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	want := deck.NormalizeName(format)
	res := Result{Exact: []Match{}, Partial: []Match{}}
	res.Stats.Candidates = len(ids)

	for _, id := range ids {
		doc := snap.Store[id]
		if doc == nil || doc.Format == "" {
			res.Stats.Skipped++
			continue
		}
		if deck.NormalizeName(doc.Format) != want {
			res.Stats.WrongFormat++
			continue
		}

		m := Score(doc, inv)
		m.Hits = hits[id]
		if m.Score < Threshold {
			res.Stats.BelowThreshold++
			continue
		}
		if m.Percentage == ExactPercentage {
			res.Exact = append(res.Exact, m)
		} else {
			res.Partial = append(res.Partial, m)
		}
	}

	sortExact(res.Exact)
	sortPartial(res.Partial)
	return res
}

// candidates maps each deck id reachable from inv to the number of
// inventory names pointing at it.
func candidates(index deck.Index, inv inventory.Inventory) map[string]int {
	out := make(map[string]int)
	for name := range inv {
		for _, id := range index[name] {
			out[id]++
		}
	}
	return out
}

func sortExact(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Name != ms[j].Name {
			return ms[i].Name < ms[j].Name
		}
		return ms[i].DeckID < ms[j].DeckID
	})
}

func sortPartial(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Score != ms[j].Score {
			return ms[i].Score > ms[j].Score
		}
		if ms[i].Name != ms[j].Name {
			return ms[i].Name < ms[j].Name
		}
		return ms[i].DeckID < ms[j].DeckID
	})
}
