// Package search implements the deck search feature.
//
// A caller posts the cards they own as plain text, one card per line with
// an optional leading quantity, together with a format name. The feature
// validates the text, parses it into an inventory and runs it through the
// match engine against the published catalog.
//
// # Components
//
//   - Service: validation, parsing, matching and metrics.
//   - Handler: request decoding and error mapping.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /api/search : body {"cardList": "...", "format": "..."}; returns
//     {"decks100": [...], "decks70": [...]}. Any other method answers 405,
//     non-string fields and malformed card lists answer 400, a missing
//     catalog answers 500.
package search
