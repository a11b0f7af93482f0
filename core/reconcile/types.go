package reconcile

import (
	"context"

	"deck-finder/core/deck"
)

// ArtifactLoader reads persisted artifacts. artifact.Repository satisfies it.
type ArtifactLoader interface {
	LoadShard(ctx context.Context, name string) (deck.Shard, error)
	LoadCatalog(ctx context.Context) (deck.Shard, error)
}

// ReconcileResult describes one deck whose views disagree.
type ReconcileResult struct {
	// DeckID is the deck identifier.
	DeckID string `json:"deck_id"`

	// Name is the deck name from the database, or from the artifact when the
	// deck is gone from the database.
	Name string `json:"name"`

	// Shard is the shard the deck was reconciled in.
	Shard string `json:"shard"`

	DBPresent       bool `json:"db_present"`
	ArtifactPresent bool `json:"artifact_present"`
	CatalogPresent  bool `json:"catalog_present"`

	// Mismatch lists field differences between database and artifact,
	// e.g. "format: db=\"modern\" artifact=\"legacy\"".
	Mismatch []string `json:"mismatch"`

	// CatalogMismatch lists field differences between artifact and catalog,
	// e.g. "format: artifact=\"modern\" catalog=\"legacy\"".
	CatalogMismatch []string `json:"catalog_mismatch"`
}

// OK reports whether all views agree.
func (r ReconcileResult) OK() bool {
	return r.DBPresent && r.ArtifactPresent && r.CatalogPresent &&
		len(r.Mismatch) == 0 && len(r.CatalogMismatch) == 0
}

// ActionType represents the fix a plan proposes.
type ActionType string

const (
	// ActionCompile recompiles a shard and rewrites its artifacts.
	ActionCompile ActionType = "compile"
	// ActionMerge rebuilds the catalog from the shard artifacts.
	ActionMerge ActionType = "merge"
)

// Action is a proposed fix.
type Action struct {
	Type   ActionType `json:"type"`
	Shard  string     `json:"shard,omitempty"`
	Reason string     `json:"reason"`
}

// ReconcilePlan contains the results with issues and the proposed actions.
type ReconcilePlan struct {
	Results []ReconcileResult `json:"results"`
	Actions []Action          `json:"actions"`
	Summary PlanSummary       `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	// Shards is the number of shards reconciled.
	Shards int `json:"shards"`

	// TotalDecks is the number of distinct deck ids seen across the three views.
	TotalDecks int `json:"total_decks"`

	// MissingArtifact counts decks in a database but not in its artifact.
	MissingArtifact int `json:"missing_artifact"`

	// StaleArtifact counts decks in an artifact but no longer in the database.
	StaleArtifact int `json:"stale_artifact"`

	// MissingCatalog counts decks in a shard artifact but not in the catalog.
	MissingCatalog int `json:"missing_catalog"`

	// Mismatches counts decks whose artifact document differs from the database.
	Mismatches int `json:"mismatches"`

	// StaleCatalog counts decks whose catalog document differs from the shard artifact.
	StaleCatalog int `json:"stale_catalog"`
}

// IsClean reports whether nothing needs fixing.
func (s PlanSummary) IsClean() bool {
	return s.MissingArtifact == 0 && s.StaleArtifact == 0 && s.MissingCatalog == 0 &&
		s.Mismatches == 0 && s.StaleCatalog == 0
}
