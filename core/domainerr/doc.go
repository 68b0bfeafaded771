// Package domainerr defines the error taxonomy shared by the counting engine.
//
// Every recoverable condition raised by the scanner session, the quantity
// reconciler, the code generator and the product editor is reported as an
// *Error carrying a Kind. Callers branch on the kind instead of on message
// text:
//
//	if domainerr.Is(err, domainerr.KindScanNotFound) {
//	    // show "unknown code" notice, session stays idle
//	}
//
// None of these kinds are fatal. Infrastructure failures coming from the
// storage collaborator are wrapped into KindPersistenceFailure so the original
// cause stays reachable through errors.Unwrap.
package domainerr
