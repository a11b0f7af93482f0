package cmd

import (
	"context"

	"deck-finder/core/enrich"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var enrichShard string

// enrichCmd fills in the colour identity of decks that have none.
var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Add colour identity to decks using Scryfall",
	Long: `For every shard, adds the colors column when missing and resolves the
colour identity of decks whose colors are empty, querying Scryfall's
/cards/collection endpoint in chunks. Failed chunks are logged and skipped.`,
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

		shards, closeAll, err := openShards(cfg.Database, logg)
		defer closeAll()
		if err != nil {
			return err
		}

		client := enrich.NewScryfallClient(cfg.Enrich)
		for _, s := range shards {
			if enrichShard != "" && s.name != enrichShard {
				continue
			}
			job := enrich.NewJob(s.name, s.db, client, cfg.Enrich.EffectiveChunkSize(), logg)
			summary, err := job.Run(ctx)
			if err != nil {
				return err
			}
			logg.Info("Shard enriched",
				zap.String("shard", summary.Shard),
				zap.Int("updated", summary.Updated),
				zap.Int("failed_chunks", summary.FailedChunks),
			)
		}
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichShard, "shard", "", "Only enrich the named shard")
	RootCmd.AddCommand(enrichCmd)
}
