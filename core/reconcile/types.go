package reconcile

import (
	"strings"
	"time"

	"warehouse-counter/core/domainerr"

	"github.com/shopspring/decimal"
)

// Direction is the kind of count operation.
type Direction string

const (
	// Decrement takes units off the pending stock, i.e. counts them.
	Decrement Direction = "DECREMENT"
	// Increment returns units to the pending stock, i.e. undoes a count.
	Increment Direction = "INCREMENT"
)

// IsValid checks if the direction is known.
func (d Direction) IsValid() bool {
	return d == Decrement || d == Increment
}

// String returns the string representation of Direction.
func (d Direction) String() string {
	return string(d)
}

// ParseDirection reads a direction case-insensitively.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", domainerr.New(domainerr.KindInvalidInput, "unknown direction "+s)
	}
	return d, nil
}

// Change records one applied operation.
type Change struct {
	// ProductID is the product the operation was applied to.
	ProductID string `json:"product_id"`

	// Direction is empty for resets.
	Direction Direction `json:"direction,omitempty"`

	// Amount is zero for resets.
	Amount decimal.Decimal `json:"amount"`

	// Before and After are the counted quantities around the operation.
	Before decimal.Decimal `json:"before"`
	After  decimal.Decimal `json:"after"`

	// At is when the change was made.
	At time.Time `json:"at"`
}
