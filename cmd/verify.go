package cmd

import (
	"context"
	"fmt"

	"deck-finder/core/artifact"
	"deck-finder/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifyStrict bool

// verifyCmd reports catalog artifacts that no longer match their databases.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check catalog artifacts against the deck databases",
	Long: `Recompiles every shard in memory and compares it with the persisted shard
artifacts and the merged catalog. Nothing is written; the command prints the
actions (compile or merge) that would bring the artifacts up to date.`,
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

		repo, err := artifact.New(cfg.Catalog, cfg.Storage)
		if err != nil {
			return err
		}

		plan, err := reconcile.ReconcileWithPlan(ctx, readers(shards, logg), repo)
		if err != nil {
			return err
		}

		for _, r := range plan.Results {
			logg.Debug("Deck out of sync",
				zap.String("shard", r.Shard),
				zap.String("deck_id", r.DeckID),
				zap.String("name", r.Name),
				zap.Bool("db_present", r.DBPresent),
				zap.Bool("artifact_present", r.ArtifactPresent),
				zap.Bool("catalog_present", r.CatalogPresent),
				zap.Strings("mismatch", r.Mismatch),
				zap.Strings("catalog_mismatch", r.CatalogMismatch),
			)
		}
		for _, a := range plan.Actions {
			logg.Warn("Action required",
				zap.String("type", string(a.Type)),
				zap.String("shard", a.Shard),
				zap.String("reason", a.Reason),
			)
		}
		logg.Info("Verification finished",
			zap.Int("shards", plan.Summary.Shards),
			zap.Int("decks", plan.Summary.TotalDecks),
			zap.Int("missing_artifact", plan.Summary.MissingArtifact),
			zap.Int("stale_artifact", plan.Summary.StaleArtifact),
			zap.Int("missing_catalog", plan.Summary.MissingCatalog),
			zap.Int("mismatches", plan.Summary.Mismatches),
			zap.Int("stale_catalog", plan.Summary.StaleCatalog),
		)

		if verifyStrict && !plan.Summary.IsClean() {
			return fmt.Errorf("catalog artifacts are out of date (%d action(s))", len(plan.Actions))
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyStrict, "strict", false, "Exit with an error when artifacts are out of date")
	RootCmd.AddCommand(verifyCmd)
}
