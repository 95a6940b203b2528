package repos

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

var (
	shipperOrdersShape = With("Orders")
	shipperDeepShape   = With("Orders", "Orders.Customer")
)

type ShipperRepo interface {
	Repository[domain.Shipper]
	GetShippersWithOrders(dbc dbctx.Context) ([]*domain.Shipper, error)
	GetActiveShippers(dbc dbctx.Context) ([]*domain.Shipper, error)
	GetShipperWithOrders(dbc dbctx.Context, shipperID int) (*domain.Shipper, error)
}

type shipperRepo struct {
	*repo[domain.Shipper, *domain.Shipper]
}

func NewShipperRepo(db *gorm.DB, baseLog *logger.Logger) ShipperRepo {
	return &shipperRepo{repo: newRepo[domain.Shipper, *domain.Shipper](db, baseLog.With("repo", "ShipperRepo"))}
}

func (r *shipperRepo) GetShippersWithOrders(dbc dbctx.Context) ([]*domain.Shipper, error) {
	var out []*domain.Shipper
	err := shipperOrdersShape.apply(r.conn(dbc)).
		Order("company_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("shippers with orders", err)
	}
	return out, nil
}

// GetActiveShippers returns shippers that have carried at least one order,
// via a semi-join existence test.
func (r *shipperRepo) GetActiveShippers(dbc dbctx.Context) ([]*domain.Shipper, error) {
	var out []*domain.Shipper
	err := r.conn(dbc).
		Where("EXISTS (SELECT 1 FROM orders WHERE orders.ship_via = shippers.id)").
		Order("company_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("active shippers", err)
	}
	return out, nil
}

func (r *shipperRepo) GetShipperWithOrders(dbc dbctx.Context, shipperID int) (*domain.Shipper, error) {
	var out domain.Shipper
	err := shipperDeepShape.apply(r.conn(dbc)).
		First(&out, "id = ?", shipperID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapError("shipper with orders", err)
	}
	return &out, nil
}

func (r *shipperRepo) Delete(dbc dbctx.Context, id int) error {
	ok, err := r.Exists(dbc, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("delete: no shipper with id %d", id))
	}
	var dependents int64
	if err := r.conn(dbc).Model(&domain.Order{}).Where("ship_via = ?", id).Count(&dependents).Error; err != nil {
		return MapError("delete shipper", err)
	}
	if dependents > 0 {
		return IntegrityError(fmt.Sprintf("shipper %d still has %d orders", id, dependents))
	}
	return r.repo.Delete(dbc, id)
}
