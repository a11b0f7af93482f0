package match

import (
	"context"
	"fmt"
	"time"

	"deck-finder/core/deck"

	"golang.org/x/sync/singleflight"
)

// CatalogLoader reads the merged catalog from persisted artifacts.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) (deck.Shard, error)
}

// Reloader rebuilds the snapshot out of band and publishes it atomically.
type Reloader struct {
	holder *Holder
	loader CatalogLoader
	sf     singleflight.Group
}

// NewReloader creates a reloader publishing into holder.
func NewReloader(holder *Holder, loader CatalogLoader) *Reloader {
	return &Reloader{holder: holder, loader: loader}
}

// Reload loads the catalog and publishes a new snapshot. Concurrent calls
// share a single load. On failure the previous snapshot stays published.
func (r *Reloader) Reload(ctx context.Context) (*Snapshot, error) {
	v, err, _ := r.sf.Do("catalog", func() (interface{}, error) {
		shard, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		snap := NewSnapshot(shard, time.Now())
		r.holder.Publish(snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}
