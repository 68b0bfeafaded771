// Package station connects scanner stations to the counting workflow.
//
// A station is a websocket client that forwards raw key presses from a
// barcode scanner. Each connection gets its own decoder and session: keys
// are decoded into scans, scans open a confirmation, and the client answers
// with a confirm or cancel message. Keys are dropped while a confirmation is
// open.
//
// Messages from the client:
//
//	{"type":"key","key":"A","at":"2025-03-14T09:30:00.010Z"}
//	{"type":"scan","code":"ABC123"}
//	{"type":"confirm","direction":"DECREMENT","amount":"3"}
//	{"type":"cancel"}
//
// Every reply carries the session state after the message was handled.
package station
