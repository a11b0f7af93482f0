// Package reconcile checks persisted catalog artifacts against the deck
// databases they were compiled from.
//
// Three views of every deck are compared:
//   - Database: a fresh compilation of the shard's rows
//   - Artifact: the shard's decks_<shard>.json
//   - Catalog: the merged decks.json
//
// A deck present in only some of them, or whose artifact document differs
// from the database, produces a ReconcileResult. ReconcileWithPlan turns
// the results into actions (recompile a shard, re-run the merge) without
// executing them.
//
// # Usage Example
//
//	plan, err := reconcile.ReconcileWithPlan(ctx, sources, repo)
//	for _, a := range plan.Actions {
//	    fmt.Println(a.Type, a.Shard, a.Reason)
//	}
package reconcile
