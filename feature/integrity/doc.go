// Package integrity exposes health checks over the persisted catalog artifacts.
//
// # Checks Provided
//
//   - Artifacts: every decks_<shard>.json / index_<shard>.json pair and the
//     merged catalog decode, and every deck id appears both in some shard
//     and in the catalog.
//
// # HTTP Endpoints
//
//   - GET /api/integrity : Runs all checks (requires the API key when one is configured).
//   - GET /api/integrity/artifacts : Runs the artifact check.
package integrity
