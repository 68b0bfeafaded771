// Package scanner reconstructs barcode reads from raw keystrokes.
//
// USB barcode scanners behave like keyboards: a read arrives as a burst of
// key presses a few milliseconds apart, usually followed by Enter. The Decoder
// tells those bursts apart from slow human typing using the gap between keys.
//
// # Rules
//
//   - A key arriving InterKeyGap or later after the previous one discards the
//     buffer and starts a new one with that key.
//   - Enter flushes a non-empty buffer as an Event.
//   - Without Enter, a flush timer armed on every key fires after
//     FlushTimeout; the buffer is emitted only if it holds MinLength runes.
//
// Decoder is a plain state machine driven by Feed and Expire so it can be
// tested with synthetic timestamps. Run wires it to an input channel and owns
// the flush timer; everything stops when the context is cancelled.
//
// Gating input while a confirmation is pending is the caller's job.
package scanner
