package restock

import (
	"context"
	"errors"
	"fmt"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/matcher"
	"warehouse-counter/core/session"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Planner turns line items into stock increases.
type Planner struct {
	catalog *catalog.Catalog
	store   catalog.Store
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewPlanner creates a planner. Writes are paced by cfg.
func NewPlanner(cat *catalog.Catalog, store catalog.Store, cfg Config, logger *zap.Logger) *Planner {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Planner{
		catalog: cat,
		store:   store,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Plan matches every item against the current catalog. It does not write;
// use Apply for that.
func (p *Planner) Plan(items []LineItem) Plan {
	idx := matcher.FromCatalog(p.catalog, p.logger)
	plan := Plan{Summary: Summary{Items: len(items), ByKind: map[string]int{}}}
	totals := make(map[string]catalog.Product)

	for _, item := range items {
		if !item.Quantity.IsPositive() {
			plan.Unresolved = append(plan.Unresolved, Unresolved{Item: item, Reason: "quantity must be positive"})
			continue
		}

		cand, ok := idx.Match(matcher.Reference{Name: item.Name, Code: item.Code})
		if !ok {
			plan.Unresolved = append(plan.Unresolved, Unresolved{Item: item, Reason: "no matching product"})
			continue
		}

		current, seen := totals[cand.Product.ID]
		if !seen {
			current = cand.Product
		}
		after := current
		after.TotalQuantity = current.TotalQuantity.Add(item.Quantity)
		totals[cand.Product.ID] = after

		plan.Actions = append(plan.Actions, Action{
			Type:      ActionIncreaseTotal,
			Item:      item,
			ProductID: cand.Product.ID,
			Code:      cand.Product.Code,
			Name:      cand.Product.Name,
			Match:     cand.Kind,
			Before:    current.TotalQuantity,
			After:     after.TotalQuantity,
		})
		plan.Summary.ByKind[string(cand.Kind)]++
		plan.Summary.Quantity = plan.Summary.Quantity.Add(item.Quantity)
	}

	plan.Summary.Matched = len(plan.Actions)
	plan.Summary.Unresolved = len(plan.Unresolved)
	plan.Summary.Products = len(totals)
	return plan
}

// Apply executes the plan's actions one by one. Nothing is written unless
// opts.Confirmed is set and opts.DryRun is not. A failed action is recorded
// and the rest still run; only cancellation stops the batch.
//
// Each action adds its item quantity to the product's current total, so
// counts or edits made between Plan and Apply are preserved.
func (p *Planner) Apply(ctx context.Context, plan Plan, opts Options) (Result, error) {
	var res Result
	if !opts.Confirmed || opts.DryRun {
		return res, nil
	}
	res.Executed = true

	for _, action := range plan.Actions {
		if err := p.limiter.Wait(ctx); err != nil {
			return res, fmt.Errorf("restock interrupted after %d actions: %w", len(res.Applied), err)
		}

		applied, err := p.apply(ctx, action)
		if err != nil {
			if ctx.Err() != nil {
				return res, fmt.Errorf("restock interrupted after %d actions: %w", len(res.Applied), err)
			}
			p.logger.Warn("Restock action failed", zap.String("product", action.Code), zap.Error(err))
			res.Failed = append(res.Failed, Failure{Action: action, Error: err.Error()})
			continue
		}
		res.Applied = append(res.Applied, applied)
	}

	p.logger.Info("Restock applied",
		zap.Int("applied", len(res.Applied)),
		zap.Int("failed", len(res.Failed)),
		zap.Int("unresolved", len(plan.Unresolved)))
	return res, nil
}

// apply adds one action's quantity to the product's current total while
// holding the product against concurrent counts.
func (p *Planner) apply(ctx context.Context, action Action) (Action, error) {
	release, err := p.catalog.Hold(ctx, action.ProductID)
	if err != nil {
		return action, err
	}
	defer release()

	before, ok := p.catalog.Get(action.ProductID)
	if !ok {
		return action, errors.New("product no longer exists")
	}
	after := before
	after.TotalQuantity = before.TotalQuantity.Add(action.Item.Quantity)

	if err := session.Persist(ctx, p.catalog, p.store, before, after, catalog.TotalPatch(after)); err != nil {
		return action, err
	}
	action.Before, action.After = before.TotalQuantity, after.TotalQuantity
	return action, nil
}

// PlanAndApply is a convenience wrapper that reads src, plans and optionally applies.
func (p *Planner) PlanAndApply(ctx context.Context, src Source, opts Options) (Plan, Result, error) {
	items, err := src.LineItems(ctx)
	if err != nil {
		return Plan{}, Result{}, err
	}
	plan := p.Plan(items)
	res, err := p.Apply(ctx, plan, opts)
	return plan, res, err
}
