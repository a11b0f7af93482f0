package match

import (
	"bytes"
	"encoding/json"
)

// Item is a required item annotated with the copies the inventory lacks.
type Item struct {
	CardName string `json:"card_name"`
	Quantity int    `json:"quantity"`
	Missing  int    `json:"missing"`
}

// Category is a mainboard category of annotated items.
type Category struct {
	Name  string
	Items []Item
}

// Categories keeps the deck's category order when encoded as a JSON object.
type Categories []Category

// MarshalJSON encodes the categories as an ordered JSON object.
func (c Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		items := cat.Items
		if items == nil {
			items = []Item{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Mainboard wraps the annotated categories.
type Mainboard struct {
	Categories Categories `json:"categories"`
}

// Match is one deck kept by a search.
type Match struct {
	DeckID    string  `json:"deck_id"`
	Name      string  `json:"name"`
	Format    string  `json:"format"`
	UpdatedAt string  `json:"updatedAt"`
	Colors    *string `json:"colors"`

	// Percentage is the completion rounded to two decimals.
	Percentage string `json:"percentage"`
	// Score is the unrounded completion used for gating and ordering.
	Score float64 `json:"-"`
	// Hits counts the distinct inventory names that selected this deck.
	Hits int `json:"-"`

	Mainboard  Mainboard `json:"mainboard"`
	Sideboard  []Item    `json:"sideboard"`
	Maybeboard []Item    `json:"maybeboard"`
}

// Stats counts how candidates were handled in one search.
type Stats struct {
	Candidates     int `json:"candidates"`
	WrongFormat    int `json:"wrong_format"`
	Skipped        int `json:"skipped"`
	BelowThreshold int `json:"below_threshold"`
}

// Result holds the kept decks of a search.
type Result struct {
	Exact   []Match `json:"decks100"`
	Partial []Match `json:"decks70"`
	Stats   Stats   `json:"-"`
}
