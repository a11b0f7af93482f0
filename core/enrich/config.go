package enrich

// Config holds configuration for the colour identity enrichment job.
type Config struct {
	// BaseURL is the Scryfall API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.scryfall.com"`
	// ChunkSize is the number of card names per collection request.
	ChunkSize int `mapstructure:"chunk_size" default:"75"`
	// DelayMs is the minimum delay between two requests.
	DelayMs int `mapstructure:"delay_ms" default:"100"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"deck-finder/1.0"`
}

// MaxChunkSize is the largest batch the collection endpoint accepts.
const MaxChunkSize = 75

// EffectiveChunkSize clamps ChunkSize to (0, MaxChunkSize].
func (c Config) EffectiveChunkSize() int {
	if c.ChunkSize <= 0 || c.ChunkSize > MaxChunkSize {
		return MaxChunkSize
	}
	return c.ChunkSize
}
