// Package source reads canonical deck records out of a relational store.
//
// A Reader wraps one gorm connection (one shard) and streams the item rows
// of every deck, joined with the deck identity, ordered by deck id. Rows are
// scanned loosely (drivers disagree on whether ids are ints, text or bytes)
// and canonicalised once into deck.Record values, so nothing downstream ever
// sees a raw row.
//
// # Schema
//
// The expected layout is three tables:
//
//	decks        (deck_id, deck_name, formato|format, updated_at, colors?)
//	deck_cartas  (deck_id, card_id, quantity, board, category)
//	cartas       (card_id, card_name)
//
// The format column may be called either "formato" or "format". The colors
// column is optional; shards that were never enriched read it as NULL.
// CheckSchema resolves these variants and reports missing columns as a
// *SchemaError.
//
// # Usage
//
//	r := source.NewReader("modern", db, log)
//	if err := r.CheckSchema(); err != nil {
//	    return err
//	}
//	res, err := compiler.CompileSource(ctx, r)
package source
