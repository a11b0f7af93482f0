package source

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"deck-finder/core/database"

	"gorm.io/gorm"
)

// ErrSchema is wrapped by *SchemaError.
var ErrSchema = errors.New("deck schema mismatch")

// SchemaError lists the columns a shard lacks, per table.
type SchemaError struct {
	Missing map[string][]string
}

func (e *SchemaError) Error() string {
	tables := make([]string, 0, len(e.Missing))
	for t := range e.Missing {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	parts := make([]string, 0, len(tables))
	for _, t := range tables {
		parts = append(parts, fmt.Sprintf("%s(%s)", t, strings.Join(e.Missing[t], ", ")))
	}
	return fmt.Sprintf("%s: missing %s", ErrSchema, strings.Join(parts, "; "))
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

const (
	tableDecks     = "decks"
	tableDeckCards = "deck_cartas"
	tableCards     = "cartas"
)

// requiredColumns are the columns every shard must carry. The format column
// is resolved separately since it has two accepted names.
var requiredColumns = map[string][]string{
	tableDecks:     {"deck_id", "deck_name", "updated_at"},
	tableDeckCards: {"deck_id", "card_id", "quantity", "board", "category"},
	tableCards:     {"card_id", "card_name"},
}

// formatColumns are the accepted names of the deck format column, in order of preference.
var formatColumns = []string{"formato", "format"}

// Layout describes how a shard spells the optional parts of the schema.
type Layout struct {
	// FormatColumn is the decks column holding the format label.
	FormatColumn string
	// HasColors is false when decks has no colors column yet.
	HasColors bool
}

// inspect resolves the layout of db and reports missing columns.
func inspect(db *gorm.DB) (Layout, error) {
	missing, err := database.MissingColumns(db, requiredColumns)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to inspect schema: %w", err)
	}

	columns, err := database.GetTableColumns(db, tableDecks)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to inspect schema: %w", err)
	}
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[c.Field] = true
	}

	var layout Layout
	for _, name := range formatColumns {
		if have[name] {
			layout.FormatColumn = name
			break
		}
	}
	if layout.FormatColumn == "" {
		missing[tableDecks] = append(missing[tableDecks], strings.Join(formatColumns, "|"))
	}
	layout.HasColors = have["colors"]

	if len(missing) > 0 {
		return layout, &SchemaError{Missing: missing}
	}
	return layout, nil
}

// query builds the ordered join for layout.
func (l Layout) query() string {
	colors := "d.colors"
	if !l.HasColors {
		colors = "NULL"
	}
	return fmt.Sprintf(`SELECT
	d.deck_id AS deck_id, d.deck_name AS deck_name, d.%s AS format,
	d.updated_at AS updated_at, %s AS colors,
	c.card_name AS card_name, dc.quantity AS quantity, dc.board AS board, dc.category AS category
FROM deck_cartas AS dc
JOIN decks AS d ON d.deck_id = dc.deck_id
JOIN cartas AS c ON c.card_id = dc.card_id
ORDER BY d.deck_id`, l.FormatColumn, colors)
}
