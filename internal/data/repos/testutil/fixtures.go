package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/pointers"
)

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Category {
	tb.Helper()
	c := &domain.Category{CategoryName: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedSupplier(tb testing.TB, ctx context.Context, tx *gorm.DB, company string) *domain.Supplier {
	tb.Helper()
	s := &domain.Supplier{
		CompanyName: company,
		ContactName: pointers.String("Contact"),
		Country:     pointers.String("USA"),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed supplier: %v", err)
	}
	return s
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, categoryID, supplierID *int, price string) *domain.Product {
	tb.Helper()
	unit := decimal.RequireFromString(price)
	p := &domain.Product{
		ProductName:  name,
		CategoryID:   categoryID,
		SupplierID:   supplierID,
		UnitPrice:    &unit,
		UnitsInStock: pointers.Int(20),
		ReorderLevel: pointers.Int(5),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, company, country string) *domain.Customer {
	tb.Helper()
	c := &domain.Customer{
		CompanyName: company,
		ContactName: pointers.String("Contact"),
		Country:     pointers.String(country),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedEmployee(tb testing.TB, ctx context.Context, tx *gorm.DB, first, last string, reportsTo *int) *domain.Employee {
	tb.Helper()
	e := &domain.Employee{
		FirstName: first,
		LastName:  last,
		HireDate:  pointers.Ptr(time.Date(2020, time.January, 6, 0, 0, 0, 0, time.UTC)),
		ReportsTo: reportsTo,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed employee: %v", err)
	}
	return e
}

func SeedShipper(tb testing.TB, ctx context.Context, tx *gorm.DB, company string) *domain.Shipper {
	tb.Helper()
	s := &domain.Shipper{CompanyName: company, Phone: pointers.String("(503) 555-0100")}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed shipper: %v", err)
	}
	return s
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customerID, employeeID *int, orderedAt time.Time) *domain.Order {
	tb.Helper()
	freight := decimal.RequireFromString("10.00")
	o := &domain.Order{
		CustomerID: customerID,
		EmployeeID: employeeID,
		OrderDate:  &orderedAt,
		Freight:    &freight,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}

func SeedOrderDetail(tb testing.TB, ctx context.Context, tx *gorm.DB, orderID, productID int, price string, qty int) *domain.OrderDetail {
	tb.Helper()
	od := &domain.OrderDetail{
		OrderID:   orderID,
		ProductID: productID,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
		Discount:  decimal.Zero,
	}
	if err := tx.WithContext(ctx).Create(od).Error; err != nil {
		tb.Fatalf("seed order detail: %v", err)
	}
	return od
}

// ShipOrder stamps a shipped date on an existing order.
func ShipOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, orderID int, shippedAt time.Time) {
	tb.Helper()
	err := tx.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", orderID).
		Update("shipped_date", shippedAt).Error
	if err != nil {
		tb.Fatalf("ship order: %v", err)
	}
}
