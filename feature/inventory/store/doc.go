// Package store is the SQL-backed implementation of catalog.Store.
//
// GormStore keeps products in the products table (MySQL in production,
// sqlite for a single station) and announces every successful write through
// a Notifier. Subscribers receive a full snapshot first and a fresh snapshot
// after each announced change, which is what lets every catalog rebuild
// itself wholesale instead of applying deltas.
//
// # Notifiers
//
//   - LocalNotifier: in-process fan-out, enough for one service instance.
//   - RedisNotifier: pub/sub over Redis, so counting stations connected to
//     different instances see each other's counts.
//
// Snapshot loads are coalesced with singleflight: a burst of announcements
// triggers one query per burst, not one per subscriber.
package store
