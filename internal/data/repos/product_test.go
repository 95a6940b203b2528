package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos/testutil"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/pointers"
)

func TestProductRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProductRepo(db, testutil.Logger(t))

	beverages := testutil.SeedCategory(t, ctx, tx, "Beverages")
	condiments := testutil.SeedCategory(t, ctx, tx, "Condiments")
	sup := testutil.SeedSupplier(t, ctx, tx, "Exotic Liquids")

	chai := testutil.SeedProduct(t, ctx, tx, "Chai", pointers.Int(beverages.ID), pointers.Int(sup.ID), "18.00")
	chang := testutil.SeedProduct(t, ctx, tx, "Chang", pointers.Int(beverages.ID), pointers.Int(sup.ID), "19.00")
	syrup := testutil.SeedProduct(t, ctx, tx, "Aniseed Syrup", pointers.Int(condiments.ID), pointers.Int(sup.ID), "10.00")

	// Chang is under its reorder level; syrup is discontinued and also under.
	if err := tx.Model(chang).Updates(map[string]interface{}{"units_in_stock": 3, "reorder_level": 10}).Error; err != nil {
		t.Fatalf("deplete chang: %v", err)
	}
	if err := tx.Model(syrup).Updates(map[string]interface{}{"units_in_stock": 0, "reorder_level": 10, "discontinued": true}).Error; err != nil {
		t.Fatalf("discontinue syrup: %v", err)
	}

	// GetProductsByCategory: name order, supplier attached.
	rows, err := repo.GetProductsByCategory(dbc, beverages.ID)
	if err != nil {
		t.Fatalf("GetProductsByCategory: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != chai.ID || rows[1].ID != chang.ID {
		t.Fatalf("GetProductsByCategory: got %d rows", len(rows))
	}
	if rows[0].Supplier == nil || rows[0].Supplier.CompanyName != "Exotic Liquids" {
		t.Fatalf("GetProductsByCategory: supplier not loaded")
	}

	// GetLowStockProducts: below reorder level, discontinued excluded.
	rows, err = repo.GetLowStockProducts(dbc)
	if err != nil {
		t.Fatalf("GetLowStockProducts: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != chang.ID {
		t.Fatalf("GetLowStockProducts: got %d rows", len(rows))
	}

	// GetDiscontinuedProducts
	rows, err = repo.GetDiscontinuedProducts(dbc)
	if err != nil {
		t.Fatalf("GetDiscontinuedProducts: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != syrup.ID {
		t.Fatalf("GetDiscontinuedProducts: got %d rows", len(rows))
	}

	// GetProductsWithDetails carries category and supplier for every row.
	rows, err = repo.GetProductsWithDetails(dbc)
	if err != nil {
		t.Fatalf("GetProductsWithDetails: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("GetProductsWithDetails: expected 3, got %d", len(rows))
	}
	for _, p := range rows {
		if p.Category == nil || p.Supplier == nil {
			t.Fatalf("GetProductsWithDetails: %q missing references", p.ProductName)
		}
	}

	// Order history walks lines back to their orders.
	cust := testutil.SeedCustomer(t, ctx, tx, "Alfreds Futterkiste", "Germany")
	emp := testutil.SeedEmployee(t, ctx, tx, "Nancy", "Davolio", nil)
	order := testutil.SeedOrder(t, ctx, tx, pointers.Int(cust.ID), pointers.Int(emp.ID), time.Now().UTC())
	testutil.SeedOrderDetail(t, ctx, tx, order.ID, chai.ID, "18.00", 4)

	history, err := repo.GetProductWithOrderHistory(dbc, chai.ID)
	if err != nil {
		t.Fatalf("GetProductWithOrderHistory: %v", err)
	}
	if history == nil || len(history.OrderDetails) != 1 {
		t.Fatalf("GetProductWithOrderHistory: got %+v", history)
	}
	if history.OrderDetails[0].Order == nil || history.OrderDetails[0].Order.ID != order.ID {
		t.Fatalf("GetProductWithOrderHistory: order not loaded")
	}
	if missing, err := repo.GetProductWithOrderHistory(dbc, 999999); err != nil || missing != nil {
		t.Fatalf("GetProductWithOrderHistory missing: got %+v err=%v", missing, err)
	}

	// Products on order lines are kept.
	if err := repo.Delete(dbc, chai.ID); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Delete ordered product: expected ErrIntegrity, got %v", err)
	}
	if err := repo.Delete(dbc, chang.ID); err != nil {
		t.Fatalf("Delete unordered product: %v", err)
	}

	// Validation rejects negative stock figures.
	bad := &domain.Product{ProductName: "Broken", UnitsInStock: pointers.Int(-1)}
	if _, err := repo.Add(dbc, bad); !errors.Is(err, ErrValidation) {
		t.Fatalf("Add negative stock: expected ErrValidation, got %v", err)
	}
}
