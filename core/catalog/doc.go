// Package catalog holds the product model and the in-memory product index.
//
// The Catalog is the authoritative view the counting engine reads from: scan
// lookups, code-prefix queries for the code generator and the iteration order
// used by the fuzzy matcher all go through it.
//
// # Snapshots
//
// The index is never patched from storage deltas. Every change notification
// from the Store delivers a full Snapshot and Follow replaces the whole index
// with it. Local Upsert/Remove exist only for optimistic updates made by the
// session while a persistence call is in flight.
//
// # Store
//
// Store is the storage collaborator contract (create/update/delete plus a
// stream of full snapshots). The catalog never calls it on its own; callers
// persist first-hand and the catalog catches up from notifications.
//
// # Usage
//
//	cat := catalog.New()
//	go catalog.Follow(ctx, store, cat, logger)
//
//	product, err := cat.LookupByCode("AF.EC.JP.LAP.001")
//	if domainerr.Is(err, domainerr.KindScanNotFound) {
//	    // unknown code
//	}
package catalog
