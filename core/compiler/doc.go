// Package compiler turns canonical item records into a deck Store and an
// inverted Index, one shard at a time.
//
// A Builder consumes records in a single pass: the first record of a deck id
// creates its Document, every record appends one RequiredItem to a board and
// registers the deck id under the lowercased item name in the Index.
//
// CompileAll compiles several Sources concurrently. Shards share no state
// while compiling; CompileAll returns only after every shard has finished,
// so callers can merge the results safely.
package compiler
