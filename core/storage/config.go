package storage

import "strings"

// Config holds the S3/MinIO connection used by the s3 catalog backend.
type Config struct {
	// Endpoint is host[:port]; an http:// or https:// scheme is stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the catalog artifacts under catalog.prefix.
	Bucket string `mapstructure:"bucket" default:"decks"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS handshakes and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// DefaultTimeoutSeconds is used when TimeoutSeconds is not positive.
const DefaultTimeoutSeconds = 30

// Host returns Endpoint without its scheme.
func (c Config) Host() string {
	host := strings.TrimPrefix(c.Endpoint, "http://")
	return strings.TrimPrefix(host, "https://")
}
