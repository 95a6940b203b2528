package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
)

// TxRunner is the shared transaction boundary for multi-write invariants
// (employee reassign-then-delete, order cascade). Either every write inside
// fn commits or none do.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func ctxOf(dbc dbctx.Context) context.Context {
	if dbc.Ctx != nil {
		return dbc.Ctx
	}
	return context.Background()
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return errors.New("transaction runner has nil db")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
