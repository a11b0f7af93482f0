package artifact

// Config holds configuration for the catalog artifacts.
type Config struct {
	// Backend selects where artifacts live (local, s3).
	Backend string `mapstructure:"backend" default:"local"`
	// Dir is the local artifact directory.
	Dir string `mapstructure:"dir" default:"./artifacts"`
	// Prefix is prepended to object keys on the s3 backend.
	Prefix string `mapstructure:"prefix" default:"catalog/"`
	// ReloadOnStart loads the catalog before the server starts listening.
	ReloadOnStart bool `mapstructure:"reload_on_start" default:"true"`
}

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// IsValidBackend checks if the configured backend is supported.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendLocal, BackendS3:
		return true
	default:
		return false
	}
}
