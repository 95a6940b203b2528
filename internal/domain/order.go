package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order snapshots its ship-to address so later customer edits do not rewrite
// history. Customer, employee and shipper references are all optional.
type Order struct {
	ID             int              `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID     *int             `gorm:"index" json:"customer_id,omitempty"`
	EmployeeID     *int             `gorm:"index" json:"employee_id,omitempty"`
	OrderDate      *time.Time       `gorm:"index" json:"order_date,omitempty"`
	RequiredDate   *time.Time       `json:"required_date,omitempty"`
	ShippedDate    *time.Time       `gorm:"index" json:"shipped_date,omitempty"`
	ShipVia        *int             `gorm:"index" json:"ship_via,omitempty"`
	Freight        *decimal.Decimal `gorm:"type:decimal(18,2)" json:"freight,omitempty"`
	ShipName       *string          `gorm:"type:varchar(100)" json:"ship_name,omitempty"`
	ShipAddress    *string          `gorm:"type:varchar(200)" json:"ship_address,omitempty"`
	ShipCity       *string          `gorm:"type:varchar(100)" json:"ship_city,omitempty"`
	ShipRegion     *string          `gorm:"type:varchar(100)" json:"ship_region,omitempty"`
	ShipPostalCode *string          `gorm:"type:varchar(20)" json:"ship_postal_code,omitempty"`
	ShipCountry    *string          `gorm:"type:varchar(100)" json:"ship_country,omitempty"`

	Customer     *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Employee     *Employee     `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Shipper      *Shipper      `gorm:"foreignKey:ShipVia" json:"shipper,omitempty"`
	OrderDetails []OrderDetail `gorm:"foreignKey:OrderID" json:"order_details,omitempty"`
}

func (Order) TableName() string { return "orders" }

// Total sums quantity x unit price x (1 - discount) over the loaded order
// lines. Lines must be eager-loaded first; an empty collection totals zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.OrderDetails {
		total = total.Add(o.OrderDetails[i].LineTotal())
	}
	return total
}

func (o *Order) Validate() error {
	return nil
}
