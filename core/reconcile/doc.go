// Package reconcile applies bounded count operations to a product.
//
// Counting follows the warehouse's inverted naming: a DECREMENT takes units
// off what is still pending, which raises CountedQuantity; an INCREMENT puts
// units back, which lowers it. Every operation keeps
//
//	0 <= CountedQuantity <= TotalQuantity
//
// and is validated before anything changes, so a rejected operation returns
// the product exactly as it was given.
//
// # Operations
//
//   - Apply: counts (DECREMENT) or undoes (INCREMENT) an amount, stamps
//     LastCountedAt and returns the updated product.
//   - Reset: clears the count and LastCountedAt. Never fails.
//
// The Reconciler does not persist anything. The session stores the returned
// product and rolls back the catalog if the store rejects it.
//
// # Usage Example
//
//	r := reconcile.New()
//	updated, err := r.Apply(product, reconcile.Decrement, decimal.NewFromInt(3))
//	switch domainerr.KindOf(err) {
//	case domainerr.KindExceedsAvailable:
//	    // more than what is left to count
//	}
package reconcile
