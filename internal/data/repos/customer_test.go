package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos/testutil"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/pointers"
)

func TestCustomerRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCustomerRepo(db, testutil.Logger(t))

	now := time.Now().UTC()

	blauer := testutil.SeedCustomer(t, ctx, tx, "Blauer See Delikatessen", "Germany")
	alfreds := testutil.SeedCustomer(t, ctx, tx, "Alfreds Futterkiste", "Germany")
	horn := testutil.SeedCustomer(t, ctx, tx, "Around the Horn", "UK")
	idle := testutil.SeedCustomer(t, ctx, tx, "Bottom-Dollar Markets", "Canada")

	// A customer with no country set never appears in the country lists.
	noCountry := testutil.SeedCustomer(t, ctx, tx, "Stateless Trading", "x")
	if err := tx.Model(noCountry).Update("country", nil).Error; err != nil {
		t.Fatalf("clear country: %v", err)
	}

	emp := testutil.SeedEmployee(t, ctx, tx, "Nancy", "Davolio", nil)
	o1 := testutil.SeedOrder(t, ctx, tx, pointers.Int(alfreds.ID), pointers.Int(emp.ID), now.AddDate(0, 0, -10))
	testutil.SeedOrder(t, ctx, tx, pointers.Int(alfreds.ID), pointers.Int(emp.ID), now.AddDate(0, 0, -5))
	testutil.SeedOrder(t, ctx, tx, pointers.Int(horn.ID), pointers.Int(emp.ID), now.AddDate(0, 0, -3))

	cat := testutil.SeedCategory(t, ctx, tx, "Beverages")
	sup := testutil.SeedSupplier(t, ctx, tx, "Exotic Liquids")
	chai := testutil.SeedProduct(t, ctx, tx, "Chai", pointers.Int(cat.ID), pointers.Int(sup.ID), "18.00")
	testutil.SeedOrderDetail(t, ctx, tx, o1.ID, chai.ID, "18.00", 2)

	// GetCustomersByCountry orders by company name.
	germans, err := repo.GetCustomersByCountry(dbc, "Germany")
	if err != nil {
		t.Fatalf("GetCustomersByCountry: %v", err)
	}
	if len(germans) != 2 || germans[0].ID != alfreds.ID || germans[1].ID != blauer.ID {
		t.Fatalf("GetCustomersByCountry: got %d rows", len(germans))
	}
	if none, err := repo.GetCustomersByCountry(dbc, "Atlantis"); err != nil || len(none) != 0 {
		t.Fatalf("GetCustomersByCountry unknown: len=%d err=%v", len(none), err)
	}

	// GetCustomersWithOrders keeps only customers that have ordered, once each.
	active, err := repo.GetCustomersWithOrders(dbc)
	if err != nil {
		t.Fatalf("GetCustomersWithOrders: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("GetCustomersWithOrders: expected 2, got %d", len(active))
	}
	seen := map[int]int{}
	for _, c := range active {
		seen[c.ID]++
		if c.ID == idle.ID {
			t.Fatalf("GetCustomersWithOrders: idle customer included")
		}
	}
	if seen[alfreds.ID] != 1 {
		t.Fatalf("GetCustomersWithOrders: alfreds appeared %d times", seen[alfreds.ID])
	}

	// Deep fetch walks orders, lines, and line products.
	deep, err := repo.GetCustomerWithOrders(dbc, alfreds.ID)
	if err != nil {
		t.Fatalf("GetCustomerWithOrders: %v", err)
	}
	if deep == nil || len(deep.Orders) != 2 {
		t.Fatalf("GetCustomerWithOrders: got %+v", deep)
	}
	var lines int
	for _, o := range deep.Orders {
		for _, od := range o.OrderDetails {
			lines++
			if od.Product == nil || od.Product.ProductName != "Chai" {
				t.Fatalf("GetCustomerWithOrders: line product not loaded")
			}
		}
	}
	if lines != 1 {
		t.Fatalf("GetCustomerWithOrders: expected 1 line, got %d", lines)
	}
	if missing, err := repo.GetCustomerWithOrders(dbc, 999999); err != nil || missing != nil {
		t.Fatalf("GetCustomerWithOrders missing: got %+v err=%v", missing, err)
	}

	// GetDistinctCountries: sorted, deduplicated, nulls dropped.
	countries, err := repo.GetDistinctCountries(dbc)
	if err != nil {
		t.Fatalf("GetDistinctCountries: %v", err)
	}
	want := []string{"Canada", "Germany", "UK"}
	if len(countries) != len(want) {
		t.Fatalf("GetDistinctCountries: got %v", countries)
	}
	for i := range want {
		if countries[i] != want[i] {
			t.Fatalf("GetDistinctCountries: got %v, want %v", countries, want)
		}
	}

	// Customers with order history cannot be removed.
	if err := repo.Delete(dbc, alfreds.ID); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Delete customer with orders: expected ErrIntegrity, got %v", err)
	}
	if err := repo.Delete(dbc, idle.ID); err != nil {
		t.Fatalf("Delete idle customer: %v", err)
	}
}
