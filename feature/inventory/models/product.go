package models

import (
	"time"

	"warehouse-counter/core/catalog"

	"github.com/shopspring/decimal"
)

// ProductRecord is the persisted form of a catalog product.
type ProductRecord struct {
	ID              string          `gorm:"primaryKey;column:id;type:varchar(36)"`
	Code            string          `gorm:"column:code;type:varchar(64);index"`
	Alias           string          `gorm:"column:alias;type:varchar(64);default:''"`
	Name            string          `gorm:"column:name;type:varchar(255)"`
	Category        string          `gorm:"column:category;type:varchar(100);default:''"`
	Branch          string          `gorm:"column:branch;type:varchar(100);default:''"`
	TotalQuantity   decimal.Decimal `gorm:"column:total_quantity;type:decimal(12,3);default:0"`
	CountedQuantity decimal.Decimal `gorm:"column:counted_quantity;type:decimal(12,3);default:0"`
	LastCountedAt   *time.Time      `gorm:"column:last_counted_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (ProductRecord) TableName() string {
	return "products"
}

// ToProduct converts the record to its catalog form.
func (r ProductRecord) ToProduct() catalog.Product {
	return catalog.Product{
		ID:              r.ID,
		Code:            r.Code,
		Alias:           r.Alias,
		Name:            r.Name,
		Category:        r.Category,
		Branch:          r.Branch,
		TotalQuantity:   r.TotalQuantity,
		CountedQuantity: r.CountedQuantity,
		LastCountedAt:   r.LastCountedAt,
	}
}

// FromProduct converts a catalog product to a record.
func FromProduct(p catalog.Product) ProductRecord {
	return ProductRecord{
		ID:              p.ID,
		Code:            p.Code,
		Alias:           p.Alias,
		Name:            p.Name,
		Category:        p.Category,
		Branch:          p.Branch,
		TotalQuantity:   p.TotalQuantity,
		CountedQuantity: p.CountedQuantity,
		LastCountedAt:   p.LastCountedAt,
	}
}
