package db

import (
	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
)

// AutoMigrateAll creates the catalog tables, parents before dependents so
// foreign keys resolve on first migration.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Category{},
		&domain.Supplier{},
		&domain.Customer{},
		&domain.Employee{},
		&domain.Shipper{},

		&domain.Product{},
		&domain.Order{},
		&domain.OrderDetail{},
	)
}
