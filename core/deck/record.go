package deck

import "strings"

// Board is one of the three item groupings in a deck.
type Board string

const (
	Mainboard  Board = "mainboard"
	Sideboard  Board = "sideboard"
	Maybeboard Board = "maybeboard"
)

// UnknownCategory is used for mainboard items without a category.
const UnknownCategory = "Unknown"

// ParseBoard normalises a raw board value. Unrecognised or empty values map to Mainboard.
func ParseBoard(raw string) Board {
	switch b := Board(strings.ToLower(strings.TrimSpace(raw))); b {
	case Mainboard, Sideboard, Maybeboard:
		return b
	default:
		return Mainboard
	}
}

// NormalizeCategory trims a raw category label, defaulting to UnknownCategory.
func NormalizeCategory(raw string) string {
	c := strings.TrimSpace(raw)
	if c == "" {
		return UnknownCategory
	}
	return c
}

// NormalizeName returns the lookup key for an item name.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// Record is a canonical item-within-deck row joined with its deck identity.
type Record struct {
	DeckID    string
	DeckName  string
	Format    string
	UpdatedAt string
	Colors    *string

	CardName string
	Quantity int
	Board    Board
	Category string
}

// NewRecord builds a canonical Record from raw board and category values.
func NewRecord(deckID, deckName, format, updatedAt string, colors *string, cardName string, quantity int, board, category string) Record {
	return Record{
		DeckID:    deckID,
		DeckName:  deckName,
		Format:    format,
		UpdatedAt: updatedAt,
		Colors:    colors,
		CardName:  cardName,
		Quantity:  quantity,
		Board:     ParseBoard(board),
		Category:  NormalizeCategory(category),
	}
}
