package domain

import (
	"errors"
	"fmt"
	"time"
)

// Employee carries a self-referencing manager relation through ReportsTo.
// The manager chain is kept acyclic by write-time validation in the
// repository; the struct itself only stores the nullable manager id.
type Employee struct {
	ID              int        `gorm:"primaryKey;autoIncrement" json:"id"`
	LastName        string     `gorm:"type:varchar(50);not null;index" json:"last_name"`
	FirstName       string     `gorm:"type:varchar(50);not null" json:"first_name"`
	Title           *string    `gorm:"type:varchar(100)" json:"title,omitempty"`
	TitleOfCourtesy *string    `gorm:"type:varchar(30)" json:"title_of_courtesy,omitempty"`
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	HireDate        *time.Time `json:"hire_date,omitempty"`
	Address         *string    `gorm:"type:varchar(200)" json:"address,omitempty"`
	City            *string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	Region          *string    `gorm:"type:varchar(100)" json:"region,omitempty"`
	PostalCode      *string    `gorm:"type:varchar(20)" json:"postal_code,omitempty"`
	Country         *string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	HomePhone       *string    `gorm:"type:varchar(30)" json:"home_phone,omitempty"`
	Extension       *string    `gorm:"type:varchar(10)" json:"extension,omitempty"`
	Photo           []byte     `gorm:"type:bytes" json:"photo,omitempty"`
	Notes           *string    `gorm:"type:text" json:"notes,omitempty"`
	ReportsTo       *int       `gorm:"index" json:"reports_to,omitempty"`

	Manager      *Employee  `gorm:"foreignKey:ReportsTo" json:"manager,omitempty"`
	Subordinates []Employee `gorm:"foreignKey:ReportsTo" json:"subordinates,omitempty"`
	Orders       []Order    `gorm:"foreignKey:EmployeeID" json:"orders,omitempty"`
}

func (Employee) TableName() string { return "employees" }

func (e *Employee) FullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

func (e *Employee) Validate() error {
	if e.LastName == "" {
		return errors.New("employee last name is required")
	}
	if e.FirstName == "" {
		return errors.New("employee first name is required")
	}
	if e.ReportsTo != nil && e.ID != 0 && *e.ReportsTo == e.ID {
		return errors.New("employee cannot report to themselves")
	}
	return nil
}
