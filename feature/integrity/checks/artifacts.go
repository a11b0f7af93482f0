package checks

import (
	"context"
	"fmt"
	"sort"

	"deck-finder/core/deck"
	"deck-finder/core/merge"
)

const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDegraded = "degraded"
)

// MaxListedIDs caps the deck ids listed per problem in a report.
const MaxListedIDs = 100

// ArtifactReader reads persisted artifacts. artifact.Repository satisfies it.
type ArtifactReader interface {
	ListShards(ctx context.Context) ([]string, error)
	LoadShard(ctx context.Context, name string) (deck.Shard, error)
	LoadCatalog(ctx context.Context) (deck.Shard, error)
}

// FileReport describes one artifact pair.
type FileReport struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Decks  int    `json:"decks"`
	Items  int    `json:"items"`
	Error  string `json:"error,omitempty"`
}

// IDList is a capped, sorted list of deck ids with the full count.
type IDList struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// ArtifactReport is the result of CheckArtifacts.
type ArtifactReport struct {
	Status  string       `json:"status"`
	Shards  []FileReport `json:"shards"`
	Catalog FileReport   `json:"catalog"`

	// MissingFromCatalog lists decks found in a shard artifact but not in the catalog.
	MissingFromCatalog IDList `json:"missing_from_catalog"`
	// Orphaned lists catalog decks that no shard artifact contains.
	Orphaned IDList `json:"orphaned"`
}

// CheckArtifacts loads every shard artifact and the catalog and compares
// their deck ids. Only a failure to list shards is returned as an error;
// unreadable artifacts are reported.
func CheckArtifacts(ctx context.Context, r ArtifactReader) (*ArtifactReport, error) {
	names, err := r.ListShards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shard artifacts: %w", err)
	}

	report := &ArtifactReport{Status: StatusOK, Shards: []FileReport{}}
	inShards := make(map[string]struct{})

	for _, name := range names {
		shard, err := r.LoadShard(ctx, name)
		if err != nil {
			report.Status = StatusDegraded
		}
		for id := range shard.Store {
			inShards[id] = struct{}{}
		}
		report.Shards = append(report.Shards, fileReport(name, shard, err))
	}

	catalog, err := r.LoadCatalog(ctx)
	report.Catalog = fileReport(merge.CatalogName, catalog, err)
	if err != nil {
		report.Status = StatusDegraded
		report.MissingFromCatalog = newIDList(nil)
		report.Orphaned = newIDList(nil)
		return report, nil
	}

	var missing, orphaned []string
	for id := range inShards {
		if _, ok := catalog.Store[id]; !ok {
			missing = append(missing, id)
		}
	}
	for id := range catalog.Store {
		if _, ok := inShards[id]; !ok {
			orphaned = append(orphaned, id)
		}
	}
	report.MissingFromCatalog = newIDList(missing)
	report.Orphaned = newIDList(orphaned)

	if len(missing) > 0 || len(orphaned) > 0 {
		report.Status = StatusDegraded
	}
	return report, nil
}

func fileReport(name string, shard deck.Shard, err error) FileReport {
	if err != nil {
		return FileReport{Name: name, Status: StatusError, Error: err.Error()}
	}
	return FileReport{Name: name, Status: StatusOK, Decks: len(shard.Store), Items: len(shard.Index)}
}

func newIDList(ids []string) IDList {
	sort.Strings(ids)
	list := IDList{Count: len(ids), IDs: []string{}}
	if len(ids) > MaxListedIDs {
		ids = ids[:MaxListedIDs]
	}
	list.IDs = append(list.IDs, ids...)
	return list
}
