package domain

import (
	"errors"
	"fmt"
)

// Customer is a buying company. Orders keep a nullable back-reference, so a
// customer row can never be removed while orders exist (see repos).
type Customer struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyName  string  `gorm:"type:varchar(100);not null;index" json:"company_name"`
	ContactName  *string `gorm:"type:varchar(100)" json:"contact_name,omitempty"`
	ContactTitle *string `gorm:"type:varchar(100)" json:"contact_title,omitempty"`
	Address      *string `gorm:"type:varchar(200)" json:"address,omitempty"`
	City         *string `gorm:"type:varchar(100)" json:"city,omitempty"`
	Region       *string `gorm:"type:varchar(100)" json:"region,omitempty"`
	PostalCode   *string `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	Country      *string `gorm:"type:varchar(100);index" json:"country,omitempty"`
	Phone        *string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Fax          *string `gorm:"type:varchar(30)" json:"fax,omitempty"`

	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) DisplayName() string {
	if c.ContactName == nil || *c.ContactName == "" {
		return c.CompanyName
	}
	return fmt.Sprintf("%s (%s)", c.CompanyName, *c.ContactName)
}

func (c *Customer) Validate() error {
	if c.CompanyName == "" {
		return errors.New("customer company name is required")
	}
	return nil
}
