// Package enrich annotates decks with their colour identity.
//
// It is an offline batch over a deck shard: for every deck whose colors
// column is NULL or empty, the job collects the deck's card names, looks
// them up against the Scryfall /cards/collection endpoint in chunks and
// writes the union of the cards' colour identities back to the deck, in
// WUBRG order. Colourless decks get an empty string.
//
// Requests are sequential and spaced by a fixed delay through a rate
// limiter. A chunk that fails is logged and skipped; its cards simply do
// not contribute to the deck's colours. Nothing is retried. The job only
// fails when the database itself fails.
//
// # Usage
//
//	client := enrich.NewScryfallClient(cfg.Enrich)
//	job := enrich.NewJob("modern", db, client, cfg.Enrich.ChunkSize, log)
//	summary, err := job.Run(ctx)
package enrich
