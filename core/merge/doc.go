// Package merge unifies per-shard Stores and Indexes into the single pair the
// match engine serves from.
//
// Stores are merged as a union of keys. Deck ids are expected to be unique
// across shards; when two shards carry the same id, the shard merged later
// wins and the earlier document is dropped. This is a known limitation.
//
// Indexes are merged per item name as the union of the shards' deck id lists
// with duplicates removed. Ids keep first-seen order, which makes merging a
// single shard return an identical index.
package merge
