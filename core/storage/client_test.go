package storage_test

import (
	"testing"
	"time"

	"deck-finder/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Host(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"localhost:9000", "localhost:9000"},
		{"http://localhost:9000", "localhost:9000"},
		{"https://s3.amazonaws.com", "s3.amazonaws.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, storage.Config{Endpoint: tt.endpoint}.Host(), tt.endpoint)
	}
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"Plain", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "decks"}},
		{"HTTPSScheme", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"}},
		{"ZeroTimeout", storage.Config{Endpoint: "http://minio:9000", TimeoutSeconds: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestNewTransport(t *testing.T) {
	tr := storage.NewTransportForTest(0)
	assert.Equal(t, storage.DefaultTimeoutSeconds*time.Second, tr.ResponseHeaderTimeout)

	tr = storage.NewTransportForTest(5)
	assert.Equal(t, 5*time.Second, tr.TLSHandshakeTimeout)
}
