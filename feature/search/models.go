package search

// Request is the body of a search.
type Request struct {
	// CardList holds one card per line, e.g. "4 Lightning Bolt".
	CardList string `json:"cardList" example:"4 Lightning Bolt\n4 Island"`
	// Format is compared case-insensitively with each deck's format.
	Format string `json:"format" example:"legacy"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgMethodNotAllowed = "Only the POST method is allowed"
	msgFieldsNotStrings = "Fields cardList and format must be strings."
	msgCatalogFailure   = "Failed to load deck data."
)
