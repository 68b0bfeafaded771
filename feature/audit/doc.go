// Package audit checks the catalog for data problems.
//
// Checks:
//   - codes: duplicates (case-insensitive), generated-looking codes that do
//     not follow AF.XX.XX.XXX.NNN, and products without a code
//   - quantities: products breaking 0 <= counted <= total
//   - schema: the products table against the persisted model, when a
//     database is connected
//
// GET /audit runs all of them and can also write a catalog snapshot to the
// bucket.
package audit
