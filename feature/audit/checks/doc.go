// Package checks holds the individual audit checks. Catalog checks work on a
// product list; the schema check inspects the live database.
package checks
