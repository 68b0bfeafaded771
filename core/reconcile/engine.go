package reconcile

import (
	"fmt"
	"time"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/domainerr"

	"github.com/shopspring/decimal"
)

// Reconciler applies count operations.
type Reconciler struct {
	now func() time.Time
}

// New creates a reconciler using the wall clock.
func New() *Reconciler {
	return &Reconciler{now: time.Now}
}

// NewWithClock creates a reconciler with an injected clock.
func NewWithClock(now func() time.Time) *Reconciler {
	return &Reconciler{now: now}
}

// Apply performs a count operation and returns the updated product.
// On error the returned product is the input, unchanged.
func (r *Reconciler) Apply(p catalog.Product, dir Direction, amount decimal.Decimal) (catalog.Product, error) {
	if !dir.IsValid() {
		return p, domainerr.New(domainerr.KindInvalidInput, fmt.Sprintf("unknown direction %q", dir))
	}
	if !amount.IsPositive() {
		return p, domainerr.New(domainerr.KindInvalidAmount,
			fmt.Sprintf("amount must be positive, got %s", amount))
	}

	var counted decimal.Decimal
	switch dir {
	case Decrement:
		counted = p.CountedQuantity.Add(amount)
		if counted.GreaterThan(p.TotalQuantity) {
			return p, domainerr.New(domainerr.KindExceedsAvailable,
				fmt.Sprintf("cannot count %s of %s: only %s left", amount, p.Code, p.Remaining()))
		}
	case Increment:
		if amount.GreaterThan(p.CountedQuantity) {
			return p, domainerr.New(domainerr.KindExceedsCounted,
				fmt.Sprintf("cannot undo %s of %s: only %s counted", amount, p.Code, p.CountedQuantity))
		}
		counted = decimal.Max(p.CountedQuantity.Sub(amount), decimal.Zero)
	}

	now := r.now()
	p.CountedQuantity = counted
	p.LastCountedAt = &now
	return p, nil
}

// Reset clears the count of a product.
func (r *Reconciler) Reset(p catalog.Product) catalog.Product {
	p.CountedQuantity = decimal.Zero
	p.LastCountedAt = nil
	return p
}

// Describe builds the Change record between two versions of a product.
func (r *Reconciler) Describe(before, after catalog.Product, dir Direction, amount decimal.Decimal) Change {
	at := r.now()
	if after.LastCountedAt != nil {
		at = *after.LastCountedAt
	}
	return Change{
		ProductID: after.ID,
		Direction: dir,
		Amount:    amount,
		Before:    before.CountedQuantity,
		After:     after.CountedQuantity,
		At:        at,
	}
}
