package domain

import "errors"

type Supplier struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName  string  `gorm:"type:varchar(100);not null;index" json:"company_name"`
	ContactName  *string `gorm:"type:varchar(100)" json:"contact_name,omitempty"`
	ContactTitle *string `gorm:"type:varchar(100)" json:"contact_title,omitempty"`
	Address      *string `gorm:"type:varchar(200)" json:"address,omitempty"`
	City         *string `gorm:"type:varchar(100)" json:"city,omitempty"`
	Region       *string `gorm:"type:varchar(100)" json:"region,omitempty"`
	PostalCode   *string `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	Country      *string `gorm:"type:varchar(100)" json:"country,omitempty"`
	Phone        *string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Fax          *string `gorm:"type:varchar(30)" json:"fax,omitempty"`
	HomePage     *string `gorm:"type:text" json:"home_page,omitempty"`

	Products []Product `gorm:"foreignKey:SupplierID" json:"products,omitempty"`
}

func (Supplier) TableName() string { return "suppliers" }

func (s *Supplier) Validate() error {
	if s.CompanyName == "" {
		return errors.New("supplier company name is required")
	}
	return nil
}
