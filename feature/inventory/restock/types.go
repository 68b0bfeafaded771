package restock

import (
	"warehouse-counter/core/matcher"

	"github.com/shopspring/decimal"
)

// ActionType is the kind of change a plan makes.
type ActionType string

const (
	// ActionIncreaseTotal adds the line item quantity to the product total.
	ActionIncreaseTotal ActionType = "increase_total"
)

// Action is one planned change.
type Action struct {
	Type      ActionType        `json:"type"`
	Item      LineItem          `json:"item"`
	ProductID string            `json:"product_id"`
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	Match     matcher.MatchKind `json:"match"`
	// Before and After are the product totals around this action, counting
	// earlier actions on the same product.
	Before decimal.Decimal `json:"before"`
	After  decimal.Decimal `json:"after"`
}

// Unresolved is a line item no action was planned for.
type Unresolved struct {
	Item   LineItem `json:"item"`
	Reason string   `json:"reason"`
}

// Summary counts a plan.
type Summary struct {
	Items      int             `json:"items"`
	Matched    int             `json:"matched"`
	Unresolved int             `json:"unresolved"`
	Products   int             `json:"products"`
	Quantity   decimal.Decimal `json:"quantity"`
	ByKind     map[string]int  `json:"by_kind"`
}

// Plan is the outcome of matching line items against the catalog.
type Plan struct {
	Actions    []Action     `json:"actions"`
	Unresolved []Unresolved `json:"unresolved"`
	Summary    Summary      `json:"summary"`
}

// Options controls Apply.
type Options struct {
	// DryRun plans without writing.
	DryRun bool
	// Confirmed must be set for any write to happen.
	Confirmed bool
}

// Failure is an action whose write failed.
type Failure struct {
	Action Action `json:"action"`
	Error  string `json:"error"`
}

// Result reports an Apply.
type Result struct {
	Executed bool      `json:"executed"`
	Applied  []Action  `json:"applied"`
	Failed   []Failure `json:"failed"`
}
