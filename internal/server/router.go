package server

import (
	"github.com/gin-gonic/gin"

	"github.com/tradewind-labs/northwind-backend/internal/http/handlers"
	"github.com/tradewind-labs/northwind-backend/internal/http/middleware"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log             *logger.Logger
	HealthHandler   *handlers.HealthHandler
	CategoryHandler *handlers.CategoryHandler
	CustomerHandler *handlers.CustomerHandler
	EmployeeHandler *handlers.EmployeeHandler
	OrderHandler    *handlers.OrderHandler
	ProductHandler  *handlers.ProductHandler
	ShipperHandler  *handlers.ShipperHandler
	SupplierHandler *handlers.SupplierHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.AttachRequestID())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		categories := api.Group("/categories")
		categories.GET("", cfg.CategoryHandler.List)
		categories.POST("", cfg.CategoryHandler.Create)
		categories.GET("/:id", cfg.CategoryHandler.Get)
		categories.PUT("/:id", cfg.CategoryHandler.Update)
		categories.DELETE("/:id", cfg.CategoryHandler.Delete)

		customers := api.Group("/customers")
		customers.GET("", cfg.CustomerHandler.List)
		customers.POST("", cfg.CustomerHandler.Create)
		customers.GET("/countries", cfg.CustomerHandler.Countries)
		customers.GET("/:id", cfg.CustomerHandler.Get)
		customers.PUT("/:id", cfg.CustomerHandler.Update)
		customers.DELETE("/:id", cfg.CustomerHandler.Delete)

		employees := api.Group("/employees")
		employees.GET("", cfg.EmployeeHandler.List)
		employees.POST("", cfg.EmployeeHandler.Create)
		employees.GET("/:id", cfg.EmployeeHandler.Get)
		employees.GET("/:id/subordinates", cfg.EmployeeHandler.Subordinates)
		employees.PUT("/:id", cfg.EmployeeHandler.Update)
		employees.DELETE("/:id", cfg.EmployeeHandler.Delete)

		orders := api.Group("/orders")
		orders.GET("", cfg.OrderHandler.List)
		orders.POST("", cfg.OrderHandler.Create)
		orders.GET("/:id", cfg.OrderHandler.Get)
		orders.POST("/:id/details", cfg.OrderHandler.AddDetail)
		orders.DELETE("/:id", cfg.OrderHandler.Delete)

		products := api.Group("/products")
		products.GET("", cfg.ProductHandler.List)
		products.POST("", cfg.ProductHandler.Create)
		products.GET("/:id", cfg.ProductHandler.Get)
		products.PUT("/:id", cfg.ProductHandler.Update)
		products.DELETE("/:id", cfg.ProductHandler.Delete)

		shippers := api.Group("/shippers")
		shippers.GET("", cfg.ShipperHandler.List)
		shippers.POST("", cfg.ShipperHandler.Create)
		shippers.GET("/:id", cfg.ShipperHandler.Get)
		shippers.PUT("/:id", cfg.ShipperHandler.Update)
		shippers.DELETE("/:id", cfg.ShipperHandler.Delete)

		suppliers := api.Group("/suppliers")
		suppliers.GET("", cfg.SupplierHandler.List)
		suppliers.POST("", cfg.SupplierHandler.Create)
		suppliers.GET("/:id", cfg.SupplierHandler.Get)
		suppliers.PUT("/:id", cfg.SupplierHandler.Update)
		suppliers.DELETE("/:id", cfg.SupplierHandler.Delete)
	}

	return router
}
