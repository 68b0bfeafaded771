// Package restock adds invoice quantities to the catalog.
//
// Line items ({name, code?, quantity}) come from a Source: a JSON file in
// the bucket written by the invoice extraction step, or items posted
// directly. Plan resolves each item to a product with the fuzzy matcher and
// produces one increase_total action per matched item; items without a match
// or with a non-positive quantity are listed as unresolved. Apply writes the
// actions through the store, paced by a rate limiter, and only when the
// caller confirmed and did not ask for a dry run.
//
// # Usage
//
//	planner := restock.NewPlanner(cat, store, cfg.Restock, logger)
//	plan := planner.Plan(items)
//	res, err := planner.Apply(ctx, plan, restock.Options{Confirmed: true})
package restock
