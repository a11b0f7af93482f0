package reconcile

import (
	"context"
	"errors"
	"fmt"

	"deck-finder/core/artifact"
	"deck-finder/core/compiler"
	"deck-finder/core/deck"
)

// ReconcileWithPlan reconciles every source against the persisted artifacts
// and proposes actions. It does not execute them.
func ReconcileWithPlan(ctx context.Context, sources []compiler.Source, loader ArtifactLoader) (*ReconcilePlan, error) {
	catalog, err := loader.LoadCatalog(ctx)
	if err != nil && !errors.Is(err, artifact.ErrUnavailable) {
		return nil, err
	}
	catalogStore := catalog.Store
	if catalogStore == nil {
		catalogStore = deck.Store{}
	}

	plan := &ReconcilePlan{
		Results: []ReconcileResult{},
		Actions: []Action{},
	}

	for _, src := range sources {
		idx, err := BuildIndex(ctx, src, loader, catalogStore)
		if err != nil {
			return nil, err
		}
		results, total := Reconcile(idx)
		plan.Summary.Shards++
		plan.Summary.TotalDecks += total
		plan.Results = append(plan.Results, results...)
		plan.Actions = append(plan.Actions, shardActions(idx.Shard, results, &plan.Summary)...)
	}

	behind := plan.Summary.MissingCatalog + plan.Summary.StaleCatalog
	if behind > 0 && !hasAction(plan.Actions, ActionCompile) {
		plan.Actions = append(plan.Actions, Action{
			Type: ActionMerge,
			Reason: fmt.Sprintf("%d deck(s) missing from the catalog, %d outdated",
				plan.Summary.MissingCatalog, plan.Summary.StaleCatalog),
		})
	}
	return plan, nil
}

// shardActions counts the shard's issues into summary and returns at most
// one compile action for it.
func shardActions(shard string, results []ReconcileResult, summary *PlanSummary) []Action {
	var missing, stale, mismatched int
	for _, r := range results {
		switch {
		case r.DBPresent && !r.ArtifactPresent:
			missing++
		case !r.DBPresent && r.ArtifactPresent:
			stale++
		case len(r.Mismatch) > 0:
			mismatched++
		}
		if r.ArtifactPresent && !r.CatalogPresent {
			summary.MissingCatalog++
		}
		if len(r.CatalogMismatch) > 0 {
			summary.StaleCatalog++
		}
	}
	summary.MissingArtifact += missing
	summary.StaleArtifact += stale
	summary.Mismatches += mismatched

	if missing+stale+mismatched == 0 {
		return nil
	}
	return []Action{{
		Type:   ActionCompile,
		Shard:  shard,
		Reason: fmt.Sprintf("%d missing, %d stale, %d changed deck(s)", missing, stale, mismatched),
	}}
}

func hasAction(actions []Action, t ActionType) bool {
	for _, a := range actions {
		if a.Type == t {
			return true
		}
	}
	return false
}
