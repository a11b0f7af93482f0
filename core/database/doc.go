// Package database handles relational connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a SQLite file based on the
// application's configuration. Deck data usually arrives as a directory of
// SQLite files, one per shard; DiscoverShards lists them and Config.ForShard
// derives a per-file connection config.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the server
// with the configured timeout. SQLite connections are limited to a single
// open connection so that in-memory databases behave consistently.
//
// # Schema Inspection
//
// GetTableColumns reads column definitions (PRAGMA table_info on SQLite,
// SHOW COLUMNS on MySQL). HasColumn and MissingColumns build on it so the
// source reader can verify the deck schema before compiling and the
// enrichment job can add the colors column when it is absent.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, map[string][]string{
//	    "decks": {"deck_id", "deck_name", "formato"},
//	})
package database
