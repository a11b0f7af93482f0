// Package deck defines the data model shared by the compiler, the merger and
// the match engine.
//
// # Records
//
// A Record is one item-within-deck row read from the relational source. Board
// and category values are canonicalised once, when the Record is built:
//
//   - Board: trimmed and lowercased; anything other than mainboard, sideboard
//     or maybeboard falls back to mainboard.
//   - Category: trimmed; empty values become "Unknown".
//
// # Documents
//
// A Document is the compiled, denormalised deck: identity fields plus the
// mainboard (ordered categories of required items), the sideboard and the
// maybeboard. Category order is first-seen order and survives JSON encoding.
//
// # Store, Index and Shard
//
//   - Store: deck id -> Document.
//   - Index: lowercased item name -> deck ids containing it (no duplicates).
//   - Shard: one named (Store, Index) pair, the unit produced by a compile run
//     and consumed by the merger.
//
// Store and Index values are treated as immutable once built.
package deck
