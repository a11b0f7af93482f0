package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RequiredItem is one entry of a deck list.
type RequiredItem struct {
	CardName string `json:"card_name"`
	Quantity int    `json:"quantity"`
}

// Category is a named, ordered group of mainboard items.
type Category struct {
	Name  string
	Items []RequiredItem
}

// Categories keeps mainboard categories in first-seen order.
// It encodes as a JSON object whose key order is the slice order.
type Categories []Category

// Add appends item to the named category, creating the category on first use.
// Repeated items are kept as separate entries.
func (c *Categories) Add(name string, item RequiredItem) {
	for i := range *c {
		if (*c)[i].Name == name {
			(*c)[i].Items = append((*c)[i].Items, item)
			return
		}
	}
	*c = append(*c, Category{Name: name, Items: []RequiredItem{item}})
}

// Get returns the items of a category.
func (c Categories) Get(name string) ([]RequiredItem, bool) {
	for _, cat := range c {
		if cat.Name == name {
			return cat.Items, true
		}
	}
	return nil, false
}

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
			items = []RequiredItem{}
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

// UnmarshalJSON decodes a JSON object, keeping key order.
func (c *Categories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}

	out := Categories{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("categories: expected key, got %v", tok)
		}
		var items []RequiredItem
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("categories: %q: %w", name, err)
		}
		out = append(out, Category{Name: name, Items: items})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = out
	return nil
}

// MainSection holds the categorised main deck.
type MainSection struct {
	Categories Categories `json:"categories"`
}

// Document is the compiled record for one deck.
type Document struct {
	DeckID    string  `json:"deck_id"`
	Name      string  `json:"deck_name"`
	Format    string  `json:"format"`
	UpdatedAt string  `json:"updated_at"`
	Colors    *string `json:"colors"`

	Mainboard  MainSection    `json:"mainboard"`
	Sideboard  []RequiredItem `json:"sideboard"`
	Maybeboard []RequiredItem `json:"maybeboard"`

	// LegacyCategories is read from documents compiled before the mainboard
	// wrapper existed. It is only consulted when Mainboard has no categories.
	LegacyCategories Categories `json:"categories,omitempty"`
}

// NewDocument returns a Document with empty boards, identified by the record's deck fields.
func NewDocument(r Record) *Document {
	return &Document{
		DeckID:     r.DeckID,
		Name:       r.DeckName,
		Format:     r.Format,
		UpdatedAt:  r.UpdatedAt,
		Colors:     r.Colors,
		Mainboard:  MainSection{Categories: Categories{}},
		Sideboard:  []RequiredItem{},
		Maybeboard: []RequiredItem{},
	}
}

// Add places the record's item in the matching board.
func (d *Document) Add(r Record) {
	item := RequiredItem{CardName: r.CardName, Quantity: r.Quantity}
	switch r.Board {
	case Sideboard:
		d.Sideboard = append(d.Sideboard, item)
	case Maybeboard:
		d.Maybeboard = append(d.Maybeboard, item)
	default:
		d.Mainboard.Categories.Add(r.Category, item)
	}
}

// MainCategories returns the mainboard categories, falling back to the legacy layout.
func (d *Document) MainCategories() Categories {
	if len(d.Mainboard.Categories) == 0 && len(d.LegacyCategories) > 0 {
		return d.LegacyCategories
	}
	return d.Mainboard.Categories
}
