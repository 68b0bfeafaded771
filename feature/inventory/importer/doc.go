// Package importer reads product grids (spreadsheet or CSV rows already split
// into cells) into catalog rows.
//
// The first non-empty row is the header. Columns are recognised by name in
// English or Spanish, ignoring case and accents: name/nombre,
// category/categoria, branch/sucursal, quantity/cantidad, code/codigo,
// alias/barcode. Only the name column is required. Names are normalized the
// same way manual entry normalizes them.
//
// Batch lets the caller generate codes for rows without one while counting
// the codes already handed out earlier in the same import.
package importer
