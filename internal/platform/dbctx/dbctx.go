package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// Repositories fall back to their own handle when Tx is nil, so any
// repository call can be enlisted in a caller-owned transaction.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
