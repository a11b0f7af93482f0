package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"deck-finder/core/artifact"
	"deck-finder/core/compiler"
	"deck-finder/core/deck"

	"golang.org/x/sync/errgroup"
)

// ShardIndex holds the three views of one shard.
type ShardIndex struct {
	Shard    string
	Database deck.Store
	Artifact deck.Store
	Catalog  deck.Store
}

// BuildIndex compiles src and loads its artifact concurrently. A missing
// artifact is an empty view, not an error. catalog is shared across shards.
func BuildIndex(ctx context.Context, src compiler.Source, loader ArtifactLoader, catalog deck.Store) (*ShardIndex, error) {
	idx := &ShardIndex{Shard: src.Name(), Catalog: catalog}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := compiler.CompileSource(ctx, src)
		if err != nil {
			return err
		}
		idx.Database = res.Shard.Store
		return nil
	})
	g.Go(func() error {
		shard, err := loader.LoadShard(ctx, src.Name())
		if err != nil && !errors.Is(err, artifact.ErrUnavailable) {
			return err
		}
		idx.Artifact = shard.Store
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Reconcile returns one result per deck id of the index whose views disagree,
// sorted by deck id, and the number of distinct deck ids compared.
func Reconcile(idx *ShardIndex) ([]ReconcileResult, int) {
	union := make(map[string]struct{}, len(idx.Database))
	for id := range idx.Database {
		union[id] = struct{}{}
	}
	for id := range idx.Artifact {
		union[id] = struct{}{}
	}

	results := make([]ReconcileResult, 0)
	for id := range union {
		r := buildResult(id, idx)
		if !r.OK() {
			results = append(results, r)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DeckID < results[j].DeckID
	})
	return results, len(union)
}

func buildResult(id string, idx *ShardIndex) ReconcileResult {
	dbDoc, dbPresent := idx.Database[id]
	artDoc, artPresent := idx.Artifact[id]
	catDoc, catPresent := idx.Catalog[id]

	result := ReconcileResult{
		DeckID:          id,
		Shard:           idx.Shard,
		DBPresent:       dbPresent,
		ArtifactPresent: artPresent,
		CatalogPresent:  catPresent,
		Mismatch:        []string{},
		CatalogMismatch: []string{},
	}

	switch {
	case dbPresent && dbDoc != nil:
		result.Name = dbDoc.Name
	case artPresent && artDoc != nil:
		result.Name = artDoc.Name
	}

	if dbPresent && artPresent {
		result.Mismatch = CompareDocuments(dbDoc, artDoc)
	}
	if artPresent && catPresent {
		result.CatalogMismatch = CompareCatalog(artDoc, catDoc)
	}
	return result
}

// CompareDocuments describes the differences between the database and
// artifact versions of a deck.
func CompareDocuments(db, art *deck.Document) []string {
	return compare(db, art, "db", "artifact")
}

// CompareCatalog describes the differences between the shard artifact and
// catalog versions of a deck.
func CompareCatalog(art, cat *deck.Document) []string {
	return compare(art, cat, "artifact", "catalog")
}

func compare(a, b *deck.Document, left, right string) []string {
	out := []string{}
	if a == nil || b == nil {
		if a != b {
			out = append(out, "document: one side is null")
		}
		return out
	}

	field := func(label, x, y string) {
		if x != y {
			out = append(out, fmt.Sprintf("%s: %s=%q %s=%q", label, left, x, right, y))
		}
	}
	field("deck_name", a.Name, b.Name)
	field("format", a.Format, b.Format)
	field("updated_at", a.UpdatedAt, b.UpdatedAt)
	field("colors", colorsLabel(a.Colors), colorsLabel(b.Colors))

	count := func(label string, x, y int) {
		if x != y {
			out = append(out, fmt.Sprintf("%s: %s=%d %s=%d", label, left, x, right, y))
		}
	}
	count("mainboard", mainboardCopies(a), mainboardCopies(b))
	count("sideboard", copies(a.Sideboard), copies(b.Sideboard))
	count("maybeboard", copies(a.Maybeboard), copies(b.Maybeboard))
	return out
}

func colorsLabel(c *string) string {
	if c == nil {
		return "null"
	}
	return *c
}

func mainboardCopies(d *deck.Document) int {
	n := 0
	for _, cat := range d.MainCategories() {
		n += copies(cat.Items)
	}
	return n
}

func copies(items []deck.RequiredItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
