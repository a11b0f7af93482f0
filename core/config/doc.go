// Package config provides configuration management for deck-finder.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// every section and are registered by reflection, which also makes every key
// visible to AutomaticEnv.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and body limit
//   - Log: logging level and format
//   - Database: deck source (sqlite shard directory or a MySQL server)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Catalog: artifact backend (local or s3), directory, key prefix
//   - Enrich: Scryfall endpoint, chunk size and request delay
//
// Environment variables map to nested keys by replacing dots with
// underscores, e.g. CATALOG_DIR sets catalog.dir.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
