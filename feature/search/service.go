package search

import (
	"errors"
	"time"

	"deck-finder/core/inventory"
	"deck-finder/core/match"
	"deck-finder/core/metrics"
)

// Service runs validated searches against the match engine.
type Service struct {
	engine  *match.Engine
	metrics *metrics.Registry
}

// NewService creates a search service. metrics may be nil.
func NewService(engine *match.Engine, metrics *metrics.Registry) *Service {
	return &Service{engine: engine, metrics: metrics}
}

// Search validates and parses cardList, then matches it against format.
// Validation failures wrap inventory.ErrEmpty or inventory.ErrInvalidFormat.
func (s *Service) Search(cardList, format string) (match.Result, error) {
	start := time.Now()

	inv, err := inventory.ParseStrict(cardList)
	if err != nil {
		s.observe(metrics.OutcomeInvalid, start, match.Result{})
		return match.Result{}, err
	}

	res, err := s.engine.Search(inv, format)
	if err != nil {
		s.observe(metrics.OutcomeUnavailable, start, match.Result{})
		return match.Result{}, err
	}

	s.observe(metrics.OutcomeOK, start, res)
	return res, nil
}

func (s *Service) observe(outcome string, start time.Time, res match.Result) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveSearch(outcome, time.Since(start), len(res.Exact), len(res.Partial), res.Stats.Skipped)
}

// IsValidationError reports whether err was caused by the submitted card list.
func IsValidationError(err error) bool {
	return errors.Is(err, inventory.ErrEmpty) || errors.Is(err, inventory.ErrInvalidFormat)
}
