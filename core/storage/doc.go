// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow interface covering what the
// catalog bucket backend needs: checking and creating the bucket, uploading
// artifacts, downloading them as a stream and listing them by prefix. Both
// AWS S3 and self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider so storage
// interactions can be mocked in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
