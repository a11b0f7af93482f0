package catalog

import (
	"context"

	"deck-finder/core/match"
	"deck-finder/core/metrics"

	"go.uber.org/zap"
)

// Service reports on and reloads the published catalog.
type Service struct {
	holder   *match.Holder
	reloader *match.Reloader
	metrics  *metrics.Registry
	logger   *zap.Logger
}

// NewService creates a catalog service. metrics may be nil.
func NewService(holder *match.Holder, loader match.CatalogLoader, registry *metrics.Registry, logger *zap.Logger) *Service {
	return &Service{
		holder:   holder,
		reloader: match.NewReloader(holder, loader),
		metrics:  registry,
		logger:   logger,
	}
}

// Status describes the published snapshot.
func (s *Service) Status() (match.Info, error) {
	snap := s.holder.Current()
	if snap == nil {
		return match.Info{}, match.ErrNoSnapshot
	}
	return snap.Info(), nil
}

// Reload reads the artifacts again and publishes them. On failure the
// previous snapshot stays published.
func (s *Service) Reload(ctx context.Context) (match.Info, error) {
	snap, err := s.reloader.Reload(ctx)
	if s.metrics != nil {
		s.metrics.ObserveReload(err)
	}
	if err != nil {
		return match.Info{}, err
	}

	info := snap.Info()
	if s.metrics != nil {
		s.metrics.ObserveCatalog(info.Decks, info.Items, info.BuiltAt)
	}
	s.logger.Info("Catalog published",
		zap.Int("decks", info.Decks),
		zap.Int("items", info.Items),
	)
	return info, nil
}
