package compiler

import (
	"context"
	"fmt"

	"deck-finder/core/deck"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source yields the canonical records of one shard in a stable order.
type Source interface {
	// Name identifies the shard (e.g. the base name of its database file).
	Name() string
	// Records calls fn for every record, stopping at the first error.
	Records(ctx context.Context, fn func(deck.Record) error) error
}

// Result pairs a compiled shard with its report.
type Result struct {
	Shard  deck.Shard
	Report Report
}

// CompileSource compiles every record of src into a shard.
func CompileSource(ctx context.Context, src Source) (Result, error) {
	b := NewBuilder(src.Name())
	err := src.Records(ctx, func(r deck.Record) error {
		b.Add(r)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to compile shard %s: %w", src.Name(), err)
	}
	return Result{Shard: b.Shard(), Report: b.Report()}, nil
}

// CompileAll compiles sources concurrently, at most limit at a time
// (limit <= 0 means no limit). Results keep the order of sources.
// It returns only after every compilation has finished.
func CompileAll(ctx context.Context, sources []Source, limit int, logger *zap.Logger) ([]Result, error) {
	results := make([]Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, src := range sources {
		g.Go(func() error {
			res, err := CompileSource(ctx, src)
			if err != nil {
				return err
			}
			results[i] = res

			if res.Report.Rows == 0 {
				logger.Info("Shard has no rows", zap.String("shard", src.Name()))
				return nil
			}
			logger.Info("Shard compiled",
				zap.String("shard", src.Name()),
				zap.Int("rows", res.Report.Rows),
				zap.Int("decks", res.Report.Decks),
				zap.Int("items", res.Report.Items),
				zap.Strings("boards", res.Report.Boards),
				zap.Strings("categories", res.Report.Categories),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
