package app

import (
	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

type Repos struct {
	Categories repos.CategoryRepo
	Customers  repos.CustomerRepo
	Employees  repos.EmployeeRepo
	Orders     repos.OrderRepo
	Products   repos.ProductRepo
	Shippers   repos.ShipperRepo
	Suppliers  repos.SupplierRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Categories: repos.NewCategoryRepo(db, log),
		Customers:  repos.NewCustomerRepo(db, log),
		Employees:  repos.NewEmployeeRepo(db, log),
		Orders:     repos.NewOrderRepo(db, log),
		Products:   repos.NewProductRepo(db, log),
		Shippers:   repos.NewShipperRepo(db, log),
		Suppliers:  repos.NewSupplierRepo(db, log),
	}
}
