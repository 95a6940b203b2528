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

func TestShipperRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewShipperRepo(db, testutil.Logger(t))

	speedy := testutil.SeedShipper(t, ctx, tx, "Speedy Express")
	united := testutil.SeedShipper(t, ctx, tx, "United Package")
	idle := testutil.SeedShipper(t, ctx, tx, "Federal Shipping")

	cust := testutil.SeedCustomer(t, ctx, tx, "Alfreds Futterkiste", "Germany")
	emp := testutil.SeedEmployee(t, ctx, tx, "Nancy", "Davolio", nil)
	now := time.Now().UTC()
	o1 := testutil.SeedOrder(t, ctx, tx, pointers.Int(cust.ID), pointers.Int(emp.ID), now.AddDate(0, 0, -4))
	o2 := testutil.SeedOrder(t, ctx, tx, pointers.Int(cust.ID), pointers.Int(emp.ID), now.AddDate(0, 0, -2))
	o3 := testutil.SeedOrder(t, ctx, tx, pointers.Int(cust.ID), pointers.Int(emp.ID), now)
	for orderID, shipperID := range map[int]int{o1.ID: speedy.ID, o2.ID: speedy.ID, o3.ID: united.ID} {
		if err := tx.Model(&domain.Order{}).Where("id = ?", orderID).Update("ship_via", shipperID).Error; err != nil {
			t.Fatalf("assign shipper: %v", err)
		}
	}

	// GetShippersWithOrders: all three, carried orders attached.
	all, err := repo.GetShippersWithOrders(dbc)
	if err != nil {
		t.Fatalf("GetShippersWithOrders: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("GetShippersWithOrders: expected 3, got %d", len(all))
	}
	for _, s := range all {
		if s.ID == speedy.ID && len(s.Orders) != 2 {
			t.Fatalf("GetShippersWithOrders: speedy has %d orders", len(s.Orders))
		}
		if s.ID == idle.ID && len(s.Orders) != 0 {
			t.Fatalf("GetShippersWithOrders: idle shipper has orders")
		}
	}

	// GetActiveShippers drops the idle one and never duplicates a carrier.
	active, err := repo.GetActiveShippers(dbc)
	if err != nil {
		t.Fatalf("GetActiveShippers: %v", err)
	}
	if len(active) != 2 || active[0].ID != speedy.ID || active[1].ID != united.ID {
		t.Fatalf("GetActiveShippers: got %d rows", len(active))
	}

	// Single fetch loads carried orders and their customers.
	one, err := repo.GetShipperWithOrders(dbc, speedy.ID)
	if err != nil {
		t.Fatalf("GetShipperWithOrders: %v", err)
	}
	if one == nil || len(one.Orders) != 2 {
		t.Fatalf("GetShipperWithOrders: got %+v", one)
	}
	if one.Orders[0].Customer == nil || one.Orders[0].Customer.ID != cust.ID {
		t.Fatalf("GetShipperWithOrders: customer not loaded")
	}
	if missing, err := repo.GetShipperWithOrders(dbc, 999999); err != nil || missing != nil {
		t.Fatalf("GetShipperWithOrders missing: got %+v err=%v", missing, err)
	}

	// Carriers with order history stay.
	if err := repo.Delete(dbc, speedy.ID); !errors.Is(err, ErrIntegrity) {
		t.Fatalf("Delete active shipper: expected ErrIntegrity, got %v", err)
	}
	if err := repo.Delete(dbc, idle.ID); err != nil {
		t.Fatalf("Delete idle shipper: %v", err)
	}
}
