// Package session drives the scan → confirm → apply workflow of a counting
// station.
//
// # State machine
//
//	IDLE ──scan, found──▶ AWAITING_CONFIRMATION ──Confirm──▶ APPLYING ──▶ IDLE
//	IDLE ──scan, unknown─▶ NOT_FOUND ──next scan or Cancel──▶ IDLE
//
// Scans that arrive while a confirmation is pending or a write is in flight
// are ignored, so one physical scan is never applied twice. A rejected
// quantity (too large, not positive) keeps the dialog open.
//
// # Persistence
//
// Every change is written optimistically: the catalog is updated first, then
// the Store. If the Store fails, the catalog entry is put back to its previous
// value (unless a newer snapshot replaced it meanwhile) and the caller gets a
// PERSISTENCE_FAILURE. Counter exposes the same discipline for callers that
// address products by id instead of by scan (HTTP API, restocking).
package session
