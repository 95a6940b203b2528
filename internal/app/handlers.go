package app

import (
	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/http/handlers"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
	"github.com/tradewind-labs/northwind-backend/internal/server"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Category *handlers.CategoryHandler
	Customer *handlers.CustomerHandler
	Employee *handlers.EmployeeHandler
	Order    *handlers.OrderHandler
	Product  *handlers.ProductHandler
	Shipper  *handlers.ShipperHandler
	Supplier *handlers.SupplierHandler
}

func wireHandlers(log *logger.Logger, reposet Repos) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		Category: handlers.NewCategoryHandler(reposet.Categories),
		Customer: handlers.NewCustomerHandler(reposet.Customers),
		Employee: handlers.NewEmployeeHandler(reposet.Employees),
		Order:    handlers.NewOrderHandler(reposet.Orders),
		Product:  handlers.NewProductHandler(reposet.Products),
		Shipper:  handlers.NewShipperHandler(reposet.Shippers),
		Supplier: handlers.NewSupplierHandler(reposet.Suppliers),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	log.Info("Wiring router...")
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		HealthHandler:   handlerset.Health,
		CategoryHandler: handlerset.Category,
		CustomerHandler: handlerset.Customer,
		EmployeeHandler: handlerset.Employee,
		OrderHandler:    handlerset.Order,
		ProductHandler:  handlerset.Product,
		ShipperHandler:  handlerset.Shipper,
		SupplierHandler: handlerset.Supplier,
	})
}
