package domainerr

import "errors"

// Kind identifies a class of domain error.
type Kind string

const (
	// KindScanNotFound means a scanned code matches no product.
	KindScanNotFound Kind = "SCAN_NOT_FOUND"
	// KindExceedsAvailable means a count would push counted above total.
	KindExceedsAvailable Kind = "EXCEEDS_AVAILABLE"
	// KindExceedsCounted means an undo is larger than what has been counted.
	KindExceedsCounted Kind = "EXCEEDS_COUNTED"
	// KindInvalidAmount means the amount was zero or negative.
	KindInvalidAmount Kind = "INVALID_AMOUNT"
	// KindCodeInsufficientInput means the name has fewer than three letters.
	KindCodeInsufficientInput Kind = "CODE_INSUFFICIENT_INPUT"
	// KindCodeCollision means a duplicate code was detected at commit time.
	KindCodeCollision Kind = "CODE_COLLISION"
	// KindPersistenceFailure wraps a storage collaborator error.
	KindPersistenceFailure Kind = "PERSISTENCE_FAILURE"
	// KindInvalidState means a session operation was called out of order.
	KindInvalidState Kind = "INVALID_STATE"
	// KindNotFound means a product id is unknown to the catalog.
	KindNotFound Kind = "NOT_FOUND"
	// KindInvalidInput means malformed caller input (import rows, payloads).
	KindInvalidInput Kind = "INVALID_INPUT"
)

// Error is a domain-level error with a machine readable kind.
type Error struct {
	Kind    Kind   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a domain error of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
