package domain

import "errors"

type Shipper struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName string  `gorm:"type:varchar(100);not null;index" json:"company_name"`
	Phone       *string `gorm:"type:varchar(30)" json:"phone,omitempty"`

	Orders []Order `gorm:"foreignKey:ShipVia" json:"orders,omitempty"`
}

func (Shipper) TableName() string { return "shippers" }

func (s *Shipper) Validate() error {
	if s.CompanyName == "" {
		return errors.New("shipper company name is required")
	}
	return nil
}
