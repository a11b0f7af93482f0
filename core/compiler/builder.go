package compiler

import (
	"sort"

	"deck-finder/core/deck"
)

// Report summarises one compile run.
type Report struct {
	Shard      string   `json:"shard"`
	Rows       int      `json:"rows"`
	Decks      int      `json:"decks"`
	Items      int      `json:"items"`
	Boards     []string `json:"boards"`
	Categories []string `json:"categories"`
}

// Builder accumulates records into a shard.
type Builder struct {
	shard      deck.Shard
	indexed    map[string]map[string]struct{}
	boards     map[string]struct{}
	categories map[string]struct{}
	rows       int
}

// NewBuilder returns a Builder for the named shard.
func NewBuilder(name string) *Builder {
	return &Builder{
		shard:      deck.NewShard(name),
		indexed:    make(map[string]map[string]struct{}),
		boards:     make(map[string]struct{}),
		categories: make(map[string]struct{}),
	}
}

// Add folds one record into the shard.
func (b *Builder) Add(r deck.Record) {
	b.rows++

	doc, ok := b.shard.Store[r.DeckID]
	if !ok {
		doc = deck.NewDocument(r)
		b.shard.Store[r.DeckID] = doc
	}
	doc.Add(r)

	key := deck.NormalizeName(r.CardName)
	ids, ok := b.indexed[key]
	if !ok {
		ids = make(map[string]struct{})
		b.indexed[key] = ids
	}
	if _, dup := ids[r.DeckID]; !dup {
		ids[r.DeckID] = struct{}{}
		b.shard.Index[key] = append(b.shard.Index[key], r.DeckID)
	}

	b.boards[string(r.Board)] = struct{}{}
	if r.Board == deck.Mainboard {
		b.categories[r.Category] = struct{}{}
	}
}

// Shard returns the compiled shard. The builder must not be used afterwards.
func (b *Builder) Shard() deck.Shard {
	return b.shard
}

// Report returns the run summary.
func (b *Builder) Report() Report {
	return Report{
		Shard:      b.shard.Name,
		Rows:       b.rows,
		Decks:      len(b.shard.Store),
		Items:      len(b.shard.Index),
		Boards:     sortedKeys(b.boards),
		Categories: sortedKeys(b.categories),
	}
}

// Compile builds a shard from an in-memory record slice.
func Compile(name string, records []deck.Record) (deck.Shard, Report) {
	b := NewBuilder(name)
	for _, r := range records {
		b.Add(r)
	}
	return b.Shard(), b.Report()
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
