package domain

import "errors"

type Category struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string  `gorm:"type:varchar(100);not null;index" json:"category_name"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	Picture      []byte  `gorm:"type:bytes" json:"picture,omitempty"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) Validate() error {
	if c.CategoryName == "" {
		return errors.New("category name is required")
	}
	return nil
}
