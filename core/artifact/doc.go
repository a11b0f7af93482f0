// Package artifact persists compiled shards and the unified catalog.
//
// Every shard is stored as two JSON documents, a Document Store and an
// Inverted Index:
//
//	decks_<shard>.json   deck id -> deck document
//	index_<shard>.json   item name -> deck ids
//
// The merged catalog uses the same two shapes without a shard suffix
// (decks.json, index.json). Only the catalog is read while serving.
//
// # Backends
//
//   - FileRepository keeps artifacts in a local directory. Writes go to a
//     temporary file that is synced and renamed over the target, so readers
//     never observe a half-written artifact.
//   - BucketRepository keeps artifacts in an S3/MinIO bucket through
//     storage.Client, optionally under a key prefix.
//
// Load errors of any kind (missing object, unreadable file, malformed JSON)
// are reported as ErrUnavailable so the HTTP layer can map them to a
// server-side failure.
package artifact
