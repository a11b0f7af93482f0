package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey protects the management endpoints. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimit is the maximum request body size in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"1048576"`
}

// DefaultBodyLimit is used when BodyLimit is not positive.
const DefaultBodyLimit = 1 << 20

// EffectiveBodyLimit returns BodyLimit or DefaultBodyLimit.
func (c Config) EffectiveBodyLimit() int {
	if c.BodyLimit <= 0 {
		return DefaultBodyLimit
	}
	return c.BodyLimit
}

// Address returns the listen address for Port.
func (c Config) Address() string {
	return ":" + c.Port
}
