package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared&_foreign_keys=on"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := AutoMigrateAll(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func TestSeed(t *testing.T) {
	gdb := openTestDB(t)

	if err := Seed(gdb); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	counts := []struct {
		name  string
		model interface{}
		want  int64
	}{
		{"categories", &domain.Category{}, 8},
		{"suppliers", &domain.Supplier{}, 5},
		{"products", &domain.Product{}, 10},
		{"customers", &domain.Customer{}, 10},
		{"employees", &domain.Employee{}, 5},
		{"shippers", &domain.Shipper{}, 3},
		{"orders", &domain.Order{}, 6},
		{"order lines", &domain.OrderDetail{}, 10},
	}
	for _, c := range counts {
		var n int64
		if err := gdb.Model(c.model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", c.name, err)
		}
		if n != c.want {
			t.Fatalf("%s: got %d, want %d", c.name, n, c.want)
		}
	}

	// Running again is a no-op, not a duplication.
	if err := Seed(gdb); err != nil {
		t.Fatalf("Seed twice: %v", err)
	}
	var customers int64
	if err := gdb.Model(&domain.Customer{}).Count(&customers).Error; err != nil {
		t.Fatalf("count customers: %v", err)
	}
	if customers != 10 {
		t.Fatalf("second seed duplicated rows: %d customers", customers)
	}

	// The management chain roots at the vice president.
	var reports int64
	if err := gdb.Model(&domain.Employee{}).Where("reports_to IS NOT NULL").Count(&reports).Error; err != nil {
		t.Fatalf("count reports: %v", err)
	}
	if reports != 3 {
		t.Fatalf("expected 3 employees with managers, got %d", reports)
	}

	// Every order line resolves to a product and its order.
	var orphans int64
	err := gdb.Model(&domain.OrderDetail{}).
		Where("NOT EXISTS (SELECT 1 FROM products WHERE products.id = order_details.product_id)").
		Count(&orphans).Error
	if err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphans != 0 {
		t.Fatalf("%d order lines reference missing products", orphans)
	}
}
