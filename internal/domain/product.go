package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Product is an inventory line. Price and stock counters are nullable in the
// classic dataset, so reorder logic only applies when both sides are present.
type Product struct {
	ID              int              `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName     string           `gorm:"type:varchar(100);not null;index" json:"product_name"`
	SupplierID      *int             `gorm:"index" json:"supplier_id,omitempty"`
	CategoryID      *int             `gorm:"index" json:"category_id,omitempty"`
	QuantityPerUnit *string          `gorm:"type:varchar(50)" json:"quantity_per_unit,omitempty"`
	UnitPrice       *decimal.Decimal `gorm:"type:decimal(18,2)" json:"unit_price,omitempty"`
	UnitsInStock    *int             `json:"units_in_stock,omitempty"`
	UnitsOnOrder    *int             `json:"units_on_order,omitempty"`
	ReorderLevel    *int             `json:"reorder_level,omitempty"`
	Discontinued    bool             `gorm:"not null;default:false" json:"discontinued"`

	Supplier     *Supplier     `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Category     *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OrderDetails []OrderDetail `gorm:"foreignKey:ProductID" json:"order_details,omitempty"`
}

func (Product) TableName() string { return "products" }

// IsLowStock reports whether stock has fallen below the reorder level.
// False when either counter is unknown.
func (p *Product) IsLowStock() bool {
	return p.UnitsInStock != nil && p.ReorderLevel != nil && *p.UnitsInStock < *p.ReorderLevel
}

// TotalValue is the on-hand inventory value, treating missing price or stock
// as zero.
func (p *Product) TotalValue() decimal.Decimal {
	if p.UnitPrice == nil || p.UnitsInStock == nil {
		return decimal.Zero
	}
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(*p.UnitsInStock)))
}

func (p *Product) Validate() error {
	if p.ProductName == "" {
		return errors.New("product name is required")
	}
	if p.UnitPrice != nil && p.UnitPrice.IsNegative() {
		return errors.New("unit price must not be negative")
	}
	if p.UnitsInStock != nil && *p.UnitsInStock < 0 {
		return errors.New("units in stock must not be negative")
	}
	if p.UnitsOnOrder != nil && *p.UnitsOnOrder < 0 {
		return errors.New("units on order must not be negative")
	}
	if p.ReorderLevel != nil && *p.ReorderLevel < 0 {
		return errors.New("reorder level must not be negative")
	}
	return nil
}
