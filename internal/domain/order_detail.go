package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// OrderDetail is an order line. Identity is the composite (OrderID,
// ProductID) pair, the only composite key in the model; lines have no
// existence independent of their owning order.
type OrderDetail struct {
	OrderID   int             `gorm:"primaryKey" json:"order_id"`
	ProductID int             `gorm:"primaryKey" json:"product_id"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Discount  decimal.Decimal `gorm:"type:decimal(4,3);not null;default:0" json:"discount"`

	Order   *Order   `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderDetail) TableName() string { return "order_details" }

// LineTotal is quantity x unit price x (1 - discount).
func (od *OrderDetail) LineTotal() decimal.Decimal {
	return od.UnitPrice.
		Mul(decimal.NewFromInt(int64(od.Quantity))).
		Mul(decimal.NewFromInt(1).Sub(od.Discount))
}

func (od *OrderDetail) Validate() error {
	if od.Quantity <= 0 {
		return errors.New("order line quantity must be positive")
	}
	if od.UnitPrice.IsNegative() {
		return errors.New("order line unit price must not be negative")
	}
	if od.Discount.IsNegative() || od.Discount.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("order line discount must be between 0 and 1")
	}
	return nil
}
