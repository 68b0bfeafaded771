// Package inventory is the catalog management feature.
//
// It exposes the product catalog over HTTP and to the CLI commands:
//
//   - browsing and lookup of products by id, scanned code or free text
//   - the product editor (create/edit with generated codes and a commit-time
//     collision check that refreshes the catalog and retries once)
//   - count and reset operations outside a scanning session
//   - bulk import from a grid of cells (JSON or CSV)
//   - restocking from invoice line items with a plan/apply workflow
//   - snapshot export of the whole catalog to the bucket
//
// # Edit vs Create
//
// Save takes a Target: NewProduct{} creates a product through Store.Create,
// ExistingProduct{ID} edits one through Store.Update with the optimistic
// write and rollback shared with the counting session.
//
// # Sub-packages
//
//   - models: the products table
//   - store: catalog.Store over GORM with local or Redis change fan-out
//   - importer: grid parsing
//   - restock: line item sources and the restock planner
package inventory
