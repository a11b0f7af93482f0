package cmd

import (
	"context"
	"fmt"
	"runtime"

	"deck-finder/core/artifact"
	"deck-finder/core/compiler"
	"deck-finder/core/deck"
	"deck-finder/core/merge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compileParallel int

// compileCmd compiles every deck shard and publishes the merged catalog artifacts.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile deck databases into catalog artifacts",
	Long: `Reads every deck shard, builds its Document Store and Inverted Index,
writes the per-shard artifacts and then merges them into the unified catalog.

With database.driver=sqlite every *.db file in database.dir is a shard.
Shards compile in parallel; the merge starts once all of them are done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// 1. Open shards
		shards, closeAll, err := openShards(cfg.Database, logg)
		defer closeAll()
		if err != nil {
			return err
		}
		sources := readers(shards, logg)
		if len(sources) == 0 {
			return fmt.Errorf("no shard with a usable schema")
		}

		// 2. Compile
		results, err := compiler.CompileAll(ctx, sources, compileParallel, logg)
		if err != nil {
			return err
		}

		// 3. Persist per-shard artifacts
		repo, err := openRepository(ctx, cfg)
		if err != nil {
			return err
		}
		compiled, err := persistShards(ctx, repo, results, logg)
		if err != nil {
			return err
		}

		// 4. Merge and persist the catalog
		return publishCatalog(ctx, repo, compiled, logg)
	},
}

// persistShards writes the artifacts of every compiled shard and returns the
// non-empty ones in order. A shard without rows loses its previous artifacts.
func persistShards(ctx context.Context, repo artifact.Repository, results []compiler.Result, logg *zap.Logger) ([]deck.Shard, error) {
	compiled := make([]deck.Shard, 0, len(results))
	for _, res := range results {
		if res.Report.Rows == 0 {
			if err := repo.DeleteShard(ctx, res.Shard.Name); err != nil {
				return nil, err
			}
			logg.Info("No decks in shard, removed its artifacts", zap.String("shard", res.Shard.Name))
			continue
		}
		if err := repo.SaveShard(ctx, res.Shard); err != nil {
			return nil, err
		}
		compiled = append(compiled, res.Shard)
	}
	return compiled, nil
}

// publishCatalog merges shards in order and writes the unified artifacts.
func publishCatalog(ctx context.Context, repo artifact.Repository, shards []deck.Shard, logg *zap.Logger) error {
	catalog, collisions := merge.MergeWithCollisions(shards...)
	for _, c := range collisions {
		logg.Warn("Deck id present in several shards, keeping the later one",
			zap.String("deck_id", c.DeckID),
			zap.String("kept", c.Kept),
			zap.String("lost", c.Lost),
		)
	}

	if err := repo.SaveCatalog(ctx, catalog); err != nil {
		return err
	}
	logg.Info("Catalog written",
		zap.Int("shards", len(shards)),
		zap.Int("decks", len(catalog.Store)),
		zap.Int("items", len(catalog.Index)),
		zap.Int("collisions", len(collisions)),
	)
	return nil
}

func init() {
	compileCmd.Flags().IntVar(&compileParallel, "parallel", runtime.NumCPU(), "Maximum number of shards compiled at once (0 = unlimited)")
	RootCmd.AddCommand(compileCmd)
}
