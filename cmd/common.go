package cmd

import (
	"context"
	"errors"
	"fmt"

	"deck-finder/core/artifact"
	"deck-finder/core/compiler"
	"deck-finder/core/config"
	"deck-finder/core/database"
	"deck-finder/core/logger"
	"deck-finder/core/source"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

// shardDB is an open connection to one deck shard.
type shardDB struct {
	name string
	db   *gorm.DB
}

// openShards connects to every configured shard. With sqlite each *.db file
// in database.dir is a shard; otherwise the configured database is the only
// shard. Shards that fail to open are logged and skipped.
func openShards(cfg database.Config, logg *zap.Logger) ([]shardDB, func(), error) {
	var shards []shardDB
	closeAll := func() {
		for _, s := range shards {
			_ = database.Close(s.db)
		}
	}

	if !cfg.IsSQLite() {
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, closeAll, err
		}
		shards = append(shards, shardDB{name: cfg.Name, db: db})
		return shards, closeAll, nil
	}

	files, err := database.DiscoverShards(cfg.Dir)
	if err != nil {
		return nil, closeAll, err
	}
	for _, f := range files {
		db, err := database.Connect(cfg.ForShard(f))
		if err != nil {
			logg.Error("Failed to open shard", zap.String("shard", f.Name), zap.String("path", f.Path), zap.Error(err))
			continue
		}
		shards = append(shards, shardDB{name: f.Name, db: db})
	}
	if len(shards) == 0 {
		return nil, closeAll, fmt.Errorf("no deck databases found in %s", cfg.Dir)
	}
	return shards, closeAll, nil
}

// readers wraps shards in source readers, dropping the ones whose schema does not match.
func readers(shards []shardDB, logg *zap.Logger) []compiler.Source {
	var sources []compiler.Source
	for _, s := range shards {
		r := source.NewReader(s.name, s.db, logg)
		if err := r.CheckSchema(); err != nil {
			if errors.Is(err, source.ErrSchema) {
				logg.Error("Skipping shard with unexpected schema", zap.String("shard", s.name), zap.Error(err))
				continue
			}
			logg.Error("Failed to inspect shard", zap.String("shard", s.name), zap.Error(err))
			continue
		}
		sources = append(sources, r)
	}
	return sources
}

// openRepository builds the artifact repository and makes sure its bucket exists.
func openRepository(ctx context.Context, cfg *config.Config) (artifact.Repository, error) {
	repo, err := artifact.New(cfg.Catalog, cfg.Storage)
	if err != nil {
		return nil, err
	}
	if bucket, ok := repo.(*artifact.BucketRepository); ok {
		if err := bucket.EnsureBucket(ctx); err != nil {
			return nil, err
		}
	}
	return repo, nil
}
