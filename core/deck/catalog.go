package deck

// Store maps deck id to its compiled Document.
type Store map[string]*Document

// Index maps a normalised item name to the ids of decks containing it.
// Each id appears at most once per name.
type Index map[string][]string

// Shard is one independently compiled partition of the corpus.
type Shard struct {
	Name  string
	Store Store
	Index Index
}

// NewShard returns an empty shard.
func NewShard(name string) Shard {
	return Shard{Name: name, Store: Store{}, Index: Index{}}
}

// IsEmpty reports whether the shard holds no decks and no index entries.
func (s Shard) IsEmpty() bool {
	return len(s.Store) == 0 && len(s.Index) == 0
}

// Formats counts decks per lowercased format label.
func (s Store) Formats() map[string]int {
	out := make(map[string]int)
	for _, d := range s {
		if d == nil || d.Format == "" {
			continue
		}
		out[NormalizeName(d.Format)]++
	}
	return out
}
