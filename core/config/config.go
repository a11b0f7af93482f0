package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"deck-finder/core/artifact"
	"deck-finder/core/database"
	"deck-finder/core/enrich"
	"deck-finder/core/logger"
	"deck-finder/core/server"
	"deck-finder/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full configuration of the server and the batch commands.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Storage is only used when Catalog.Backend is s3.
	Storage storage.Config  `mapstructure:"storage"`
	Catalog artifact.Config `mapstructure:"catalog"`
	Enrich  enrich.Config   `mapstructure:"enrich"`
}

// LoadConfig reads path/.env (when present) and the environment on top of
// the struct tag defaults, then validates the result.
func LoadConfig(path string) (*Config, error) {
	// 1. .env overrides the process environment; a missing file is fine
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// 2. Defaults register every key so AutomaticEnv can see it
	registerDefaults(v, reflect.TypeOf(Config{}), "")

	// 3. CATALOG_DIR -> catalog.dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values no command can work with.
func (c *Config) Validate() error {
	if !c.Catalog.IsValidBackend() {
		return fmt.Errorf("unsupported catalog.backend %q (want %s or %s)", c.Catalog.Backend, artifact.BackendLocal, artifact.BackendS3)
	}
	switch c.Database.Driver {
	case database.DriverSQLite, database.DriverMySQL:
	default:
		return fmt.Errorf("unsupported database.driver %q (want %s or %s)", c.Database.Driver, database.DriverSQLite, database.DriverMySQL)
	}
	if c.Enrich.ChunkSize > enrich.MaxChunkSize {
		return fmt.Errorf("enrich.chunk_size %d exceeds the Scryfall limit of %d", c.Enrich.ChunkSize, enrich.MaxChunkSize)
	}
	return nil
}

// registerDefaults walks t and sets every `default` tag under its
// mapstructure key, recursing into nested sections.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		// Empty defaults are set too, otherwise the key stays invisible to AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
