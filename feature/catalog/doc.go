// Package catalog exposes the published deck catalog.
//
// The catalog is the merged Document Store and Inverted Index the search
// feature reads. It is held as an immutable snapshot; a reload reads the
// unified artifacts again and swaps the snapshot atomically, so searches in
// flight keep using the snapshot they started with. Concurrent reloads
// share a single read.
//
// # HTTP Endpoints
//
//   - GET /api/catalog : deck count, distinct item count, decks per format
//     and the time the snapshot was loaded.
//   - POST /api/catalog/reload : reloads the artifacts. Protected by the
//     API key when one is configured.
package catalog
