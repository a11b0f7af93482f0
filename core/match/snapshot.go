package match

import (
	"errors"
	"sync/atomic"
	"time"

	"deck-finder/core/deck"
)

// ErrNoSnapshot is returned when no catalog has been published yet.
var ErrNoSnapshot = errors.New("deck catalog is not loaded")

// Snapshot is an immutable view of the merged catalog.
type Snapshot struct {
	Store   deck.Store
	Index   deck.Index
	BuiltAt time.Time
}

// NewSnapshot wraps a merged shard. The shard must not be modified afterwards.
func NewSnapshot(shard deck.Shard, builtAt time.Time) *Snapshot {
	store := shard.Store
	if store == nil {
		store = deck.Store{}
	}
	index := shard.Index
	if index == nil {
		index = deck.Index{}
	}
	return &Snapshot{Store: store, Index: index, BuiltAt: builtAt}
}

// Info summarises a snapshot.
type Info struct {
	Decks   int            `json:"decks"`
	Items   int            `json:"items"`
	Formats map[string]int `json:"formats"`
	BuiltAt time.Time      `json:"built_at"`
}

// Info returns counts for the snapshot.
func (s *Snapshot) Info() Info {
	return Info{
		Decks:   len(s.Store),
		Items:   len(s.Index),
		Formats: s.Store.Formats(),
		BuiltAt: s.BuiltAt,
	}
}

// Holder publishes snapshots to concurrent readers.
// The zero value holds no snapshot.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// Publish replaces the current snapshot.
func (h *Holder) Publish(s *Snapshot) {
	h.current.Store(s)
}

// Current returns the published snapshot, or nil.
func (h *Holder) Current() *Snapshot {
	return h.current.Load()
}
