package enrich

import (
	"context"
	"fmt"

	"deck-finder/core/database"
	"deck-finder/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardLookup resolves one chunk of card names.
type CardLookup interface {
	Collection(ctx context.Context, names []string) ([]Card, error)
}

// Summary describes one enrichment run.
type Summary struct {
	Shard        string `json:"shard"`
	Pending      int    `json:"pending"`
	Updated      int    `json:"updated"`
	FailedChunks int    `json:"failed_chunks"`
}

// Job enriches the decks of one shard.
type Job struct {
	shard     string
	db        *gorm.DB
	lookup    CardLookup
	chunkSize int
	logger    *zap.Logger
}

// NewJob creates a job for the shard stored in db.
func NewJob(shard string, db *gorm.DB, lookup CardLookup, chunkSize int, logger *zap.Logger) *Job {
	if chunkSize <= 0 || chunkSize > MaxChunkSize {
		chunkSize = MaxChunkSize
	}
	return &Job{
		shard:     shard,
		db:        db,
		lookup:    lookup,
		chunkSize: chunkSize,
		logger:    logger.With(zap.String("shard", shard)),
	}
}

const (
	pendingDecksQuery = "SELECT deck_id, deck_name FROM decks WHERE colors IS NULL OR colors = ''"
	deckCardsQuery    = "SELECT c.card_name FROM deck_cartas dc JOIN cartas c ON dc.card_id = c.card_id WHERE dc.deck_id = ? AND c.card_name IS NOT NULL"
	updateColorsQuery = "UPDATE decks SET colors = ? WHERE deck_id = ?"
)

// Run enriches every deck that has no colours yet.
func (j *Job) Run(ctx context.Context) (Summary, error) {
	summary := Summary{Shard: j.shard}
	db := j.db.WithContext(ctx)

	// 1. Make sure the colors column exists
	if err := j.ensureColorsColumn(db); err != nil {
		return summary, err
	}

	// 2. Select pending decks
	var pending []map[string]any
	if err := db.Raw(pendingDecksQuery).Scan(&pending).Error; err != nil {
		return summary, fmt.Errorf("failed to select pending decks: %w", err)
	}
	summary.Pending = len(pending)
	if len(pending) == 0 {
		j.logger.Info("No decks to enrich")
		return summary, nil
	}
	j.logger.Info("Enriching decks", zap.Int("pending", len(pending)))

	// 3. Resolve and store colours deck by deck
	for _, row := range pending {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		deckID := row["deck_id"]
		deckName := utils.ToString(row["deck_name"])

		var names []string
		if err := db.Raw(deckCardsQuery, deckID).Scan(&names).Error; err != nil {
			return summary, fmt.Errorf("failed to read cards of deck %s: %w", utils.ToString(deckID), err)
		}

		colors, failed := j.colorIdentity(ctx, deckName, unique(names))
		summary.FailedChunks += failed

		if err := db.Exec(updateColorsQuery, colors, deckID).Error; err != nil {
			return summary, fmt.Errorf("failed to update deck %s: %w", utils.ToString(deckID), err)
		}
		summary.Updated++

		label := colors
		if label == "" {
			label = "colorless"
		}
		j.logger.Info("Deck enriched", zap.String("deck", deckName), zap.String("colors", label))
	}

	return summary, nil
}

func (j *Job) ensureColorsColumn(db *gorm.DB) error {
	ok, err := database.HasColumn(db, "decks", "colors")
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	if err := db.Exec("ALTER TABLE decks ADD COLUMN colors TEXT").Error; err != nil {
		return fmt.Errorf("failed to add colors column: %w", err)
	}
	j.logger.Info("Added colors column")
	return nil
}

// colorIdentity looks names up chunk by chunk and returns the sorted colour
// identity together with the number of chunks that failed.
func (j *Job) colorIdentity(ctx context.Context, deckName string, names []string) (string, int) {
	set := make(map[string]struct{})
	failed := 0

	for start := 0; start < len(names); start += j.chunkSize {
		end := min(start+j.chunkSize, len(names))

		cards, err := j.lookup.Collection(ctx, names[start:end])
		if err != nil {
			failed++
			j.logger.Error("Failed to fetch card chunk",
				zap.String("deck", deckName),
				zap.Int("from", start),
				zap.Int("to", end),
				zap.Error(err),
			)
			continue
		}
		for _, card := range cards {
			for _, c := range card.ColorIdentity {
				set[c] = struct{}{}
			}
		}
	}

	return SortColors(set), failed
}

// unique drops repeated names, keeping first-seen order.
func unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
