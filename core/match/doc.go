// Package match scores compiled decks against a user inventory.
//
// # Snapshot
//
// The engine reads from an immutable Snapshot (Store + Index) published
// through a Holder. Publishing swaps a pointer atomically, so concurrent
// searches never lock and never observe a half-built catalog. A Reloader
// rebuilds the snapshot from persisted artifacts; concurrent reloads share
// one load.
//
// # Search
//
//  1. Candidates: every inventory name is looked up in the Index; the union of
//     deck ids forms the candidate set.
//  2. Format: candidates whose format (case-insensitive) differs from the
//     requested one are dropped. Decks without a format are skipped.
//  3. Score: for every required item in every board,
//     missing = max(0, quantity - owned), and the deck-wide percentage is
//     sum(min(quantity, owned)) / sum(quantity) * 100 (0 when nothing is required).
//  4. Keep decks at or above Threshold; decks whose percentage renders as
//     "100.00" are exact, the rest partial.
//
// Exact matches are ordered by name, partial matches by percentage
// (descending) then name. Deck id breaks remaining ties.
//
// # Usage
//
//	holder := &match.Holder{}
//	holder.Publish(match.NewSnapshot(shard, time.Now()))
//	result, err := match.NewEngine(holder).Search(inv, "legacy")
package match
