package integrity

import (
	"context"

	"deck-finder/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	reader checks.ArtifactReader
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(reader checks.ArtifactReader, logger *zap.Logger) *Service {
	return &Service{
		reader: reader,
		logger: logger,
	}
}

// CheckArtifacts inspects the persisted shard artifacts and the catalog.
func (s *Service) CheckArtifacts(ctx context.Context) (*checks.ArtifactReport, error) {
	return checks.CheckArtifacts(ctx, s.reader)
}
