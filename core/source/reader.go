package source

import (
	"context"
	"fmt"
	"strings"

	"deck-finder/core/deck"
	"deck-finder/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Reader streams the deck records of one shard. It implements compiler.Source.
type Reader struct {
	name   string
	db     *gorm.DB
	logger *zap.Logger
	layout *Layout
}

// NewReader creates a reader for the shard called name.
func NewReader(name string, db *gorm.DB, logger *zap.Logger) *Reader {
	return &Reader{name: name, db: db, logger: logger}
}

// Name returns the shard name.
func (r *Reader) Name() string {
	return r.name
}

// CheckSchema verifies the shard layout. It returns a *SchemaError
// when expected columns are missing.
func (r *Reader) CheckSchema() error {
	layout, err := inspect(r.db)
	if err != nil {
		return err
	}
	r.layout = &layout
	return nil
}

// Layout returns the resolved layout, or nil before CheckSchema succeeded.
func (r *Reader) Layout() *Layout {
	return r.layout
}

// Records calls fn for every item row of the shard ordered by deck id.
// Rows without an item name are skipped and counted in the log.
func (r *Reader) Records(ctx context.Context, fn func(deck.Record) error) error {
	if r.layout == nil {
		if err := r.CheckSchema(); err != nil {
			return err
		}
	}

	db := r.db.WithContext(ctx)
	rows, err := db.Raw(r.layout.query()).Rows()
	if err != nil {
		return fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	skipped := 0
	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}

		row := make(map[string]any)
		if err := db.ScanRows(rows, &row); err != nil {
			return fmt.Errorf("failed to scan record: %w", err)
		}

		rec, ok := Canonicalize(row)
		if !ok {
			skipped++
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	if skipped > 0 {
		r.logger.Warn("Skipped rows without item name",
			zap.String("shard", r.name),
			zap.Int("skipped", skipped),
		)
	}
	return nil
}

// Canonicalize converts a loosely typed row into a Record. It reports false
// when the row has no deck id or no item name.
func Canonicalize(row map[string]any) (deck.Record, bool) {
	deckID := utils.ToString(row["deck_id"])
	cardName := utils.ToString(row["card_name"])
	if deckID == "" || strings.TrimSpace(cardName) == "" {
		return deck.Record{}, false
	}

	return deck.NewRecord(
		deckID,
		utils.ToString(row["deck_name"]),
		utils.ToString(row["format"]),
		utils.ToString(row["updated_at"]),
		utils.ToOptionalString(row["colors"]),
		cardName,
		utils.ToInt(row["quantity"]),
		utils.ToString(row["board"]),
		utils.ToString(row["category"]),
	), true
}
