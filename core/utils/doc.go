// Package utils provides loose value conversion helpers.
//
// Import grids arrive as untyped cells (numbers from spreadsheets, strings
// from CSV, bytes from drivers); ToInt, ToString, ToBool and ToDecimal turn
// them into the types the catalog uses.
package utils
