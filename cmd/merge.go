package cmd

import (
	"context"
	"fmt"

	"deck-finder/core/artifact"
	"deck-finder/core/deck"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mergeCmd re-merges persisted shard artifacts without touching the databases.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge persisted shard artifacts into the catalog",
	Long: `Reads every decks_<shard>.json / index_<shard>.json pair from the catalog
backend, in shard name order, and rewrites decks.json and index.json.`,
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

		repo, err := openRepository(ctx, cfg)
		if err != nil {
			return err
		}

		names, err := repo.ListShards(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return fmt.Errorf("no shard artifacts found")
		}

		shards, err := loadShards(ctx, repo, names, logg)
		if err != nil {
			return err
		}
		return publishCatalog(ctx, repo, shards, logg)
	},
}

// loadShards reads the named shard artifacts in order.
func loadShards(ctx context.Context, repo artifact.Repository, names []string, logg *zap.Logger) ([]deck.Shard, error) {
	shards := make([]deck.Shard, 0, len(names))
	for _, name := range names {
		shard, err := repo.LoadShard(ctx, name)
		if err != nil {
			return nil, err
		}
		logg.Info("Shard loaded",
			zap.String("shard", name),
			zap.Int("decks", len(shard.Store)),
			zap.Int("items", len(shard.Index)),
		)
		shards = append(shards, shard)
	}
	return shards, nil
}

func init() {
	RootCmd.AddCommand(mergeCmd)
}
