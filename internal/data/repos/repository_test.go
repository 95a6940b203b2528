package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/tradewind-labs/northwind-backend/internal/data/repos/testutil"
	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/pointers"
)

func TestRepositoryCRUD(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewShipperRepo(db, testutil.Logger(t))

	// Add
	created, err := repo.Add(dbc, &domain.Shipper{CompanyName: "Speedy Express"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("Add: expected generated id")
	}

	// Add rejects invalid scalars before touching the store.
	if _, err := repo.Add(dbc, &domain.Shipper{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("Add empty name: expected ErrValidation, got %v", err)
	}

	// GetByID
	got, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.CompanyName != "Speedy Express" {
		t.Fatalf("GetByID: got %+v", got)
	}

	// Absent id is (nil, nil), not an error.
	if missing, err := repo.GetByID(dbc, 999999); err != nil || missing != nil {
		t.Fatalf("GetByID missing: got %+v err=%v", missing, err)
	}

	// Returned values are detached copies: mutating one does not write back.
	got.CompanyName = "Mutated"
	again, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID again: %v", err)
	}
	if again.CompanyName != "Speedy Express" {
		t.Fatalf("expected detached copy, store now has %q", again.CompanyName)
	}

	// Update
	got.CompanyName = "Speedy Express Intl"
	if err := repo.Update(dbc, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := repo.GetByID(dbc, created.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if updated.CompanyName != "Speedy Express Intl" {
		t.Fatalf("Update not persisted, got %q", updated.CompanyName)
	}

	// Update of a missing record is ErrNotFound.
	ghost := &domain.Shipper{ID: 999999, CompanyName: "Ghost"}
	if err := repo.Update(dbc, ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update missing: expected ErrNotFound, got %v", err)
	}

	// Exists / Count
	if ok, err := repo.Exists(dbc, created.ID); err != nil || !ok {
		t.Fatalf("Exists: ok=%v err=%v", ok, err)
	}
	if _, err := repo.Add(dbc, &domain.Shipper{CompanyName: "United Package", Phone: pointers.String("(503) 555-3199")}); err != nil {
		t.Fatalf("Add second: %v", err)
	}
	if n, err := repo.Count(dbc); err != nil || n != 2 {
		t.Fatalf("Count: n=%d err=%v", n, err)
	}

	// GetAll
	all, err := repo.GetAll(dbc)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAll: expected 2, got %d", len(all))
	}

	// Delete
	if err := repo.Delete(dbc, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(dbc, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete twice: expected ErrNotFound, got %v", err)
	}
}

func TestRepositoryFind(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewCustomerRepo(db, testutil.Logger(t))

	testutil.SeedCustomer(t, ctx, tx, "Alfreds Futterkiste", "Germany")
	testutil.SeedCustomer(t, ctx, tx, "Blauer See Delikatessen", "Germany")
	testutil.SeedCustomer(t, ctx, tx, "Around the Horn", "UK")

	rows, err := repo.Find(dbc, Eq("country", "Germany"))
	if err != nil {
		t.Fatalf("Find eq: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Find eq: expected 2, got %d", len(rows))
	}

	rows, err = repo.Find(dbc, Like("company_name", "A%"), Ne("country", "UK"))
	if err != nil {
		t.Fatalf("Find like+ne: %v", err)
	}
	if len(rows) != 1 || rows[0].CompanyName != "Alfreds Futterkiste" {
		t.Fatalf("Find like+ne: got %d rows", len(rows))
	}

	// Predicates are compiled to the store, never evaluated in memory, so
	// column names are validated up front.
	if _, err := repo.Find(dbc, Eq("country; DROP TABLE customers", "x")); !errors.Is(err, ErrValidation) {
		t.Fatalf("Find bad column: expected ErrValidation, got %v", err)
	}
	if _, err := repo.Find(dbc, Cond{Field: "country", Op: Op("IN"), Value: "x"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("Find bad operator: expected ErrValidation, got %v", err)
	}
}
