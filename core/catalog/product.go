package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is the derived counting progress of a product.
type State string

const (
	StateNotCounted State = "NOT_COUNTED"
	StatePartial    State = "PARTIAL"
	StateComplete   State = "COMPLETE"
)

// Product is a catalog entry.
type Product struct {
	// ID is assigned by the store at creation and never changes.
	ID string `json:"id"`
	// Code is the human readable unique code, e.g. AF.EC.JP.LAP.001.
	Code string `json:"code"`
	// Alias is an alternate scan code such as the manufacturer barcode.
	Alias string `json:"alias,omitempty"`
	// Name is uppercase letters, digits and spaces only.
	Name     string `json:"name"`
	Category string `json:"category"`
	Branch   string `json:"branch"`
	// TotalQuantity is the expected count.
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	// CountedQuantity is the physically counted amount, 0 <= counted <= total.
	CountedQuantity decimal.Decimal `json:"counted_quantity"`
	// LastCountedAt is nil until the first count and after a reset.
	LastCountedAt *time.Time `json:"last_counted_at,omitempty"`
}

// State derives the reconciliation state from the quantities.
func (p Product) State() State {
	switch {
	case p.CountedQuantity.Sign() <= 0:
		return StateNotCounted
	case p.TotalQuantity.IsPositive() && p.CountedQuantity.Equal(p.TotalQuantity):
		return StateComplete
	default:
		return StatePartial
	}
}

// Remaining returns how much is still to be counted.
func (p Product) Remaining() decimal.Decimal {
	return p.TotalQuantity.Sub(p.CountedQuantity)
}

// Snapshot is a full copy of the products collection keyed by id.
type Snapshot map[string]Product

// Field names understood by Store.Update.
const (
	FieldCode            = "code"
	FieldAlias           = "alias"
	FieldName            = "name"
	FieldCategory        = "category"
	FieldBranch          = "branch"
	FieldTotalQuantity   = "total_quantity"
	FieldCountedQuantity = "counted_quantity"
	FieldLastCountedAt   = "last_counted_at"
)

// Patch is a partial record keyed by field name.
type Patch map[string]any

// CountPatch carries the fields touched by a count or reset.
func CountPatch(p Product) Patch {
	return Patch{
		FieldCountedQuantity: p.CountedQuantity,
		FieldLastCountedAt:   p.LastCountedAt,
	}
}

// TotalPatch carries the expected quantity.
func TotalPatch(p Product) Patch {
	return Patch{FieldTotalQuantity: p.TotalQuantity}
}

// DetailsPatch carries the editable descriptive fields.
func DetailsPatch(p Product) Patch {
	return Patch{
		FieldCode:          p.Code,
		FieldAlias:         p.Alias,
		FieldName:          p.Name,
		FieldCategory:      p.Category,
		FieldBranch:        p.Branch,
		FieldTotalQuantity: p.TotalQuantity,
	}
}
