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
	supplierProductsShape       = With("Products")
	supplierActiveProductsShape = Shape{}.Filtered("Products", "discontinued = ?", false)
	supplierDeepShape           = With("Products", "Products.Category")
)

type SupplierRepo interface {
	Repository[domain.Supplier]
	GetSuppliersWithProducts(dbc dbctx.Context) ([]*domain.Supplier, error)
	GetSuppliersWithActiveProducts(dbc dbctx.Context) ([]*domain.Supplier, error)
	GetSupplierWithProducts(dbc dbctx.Context, supplierID int) (*domain.Supplier, error)
}

type supplierRepo struct {
	*repo[domain.Supplier, *domain.Supplier]
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	return &supplierRepo{repo: newRepo[domain.Supplier, *domain.Supplier](db, baseLog.With("repo", "SupplierRepo"))}
}

func (r *supplierRepo) GetSuppliersWithProducts(dbc dbctx.Context) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	err := supplierProductsShape.apply(r.conn(dbc)).
		Order("company_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("suppliers with products", err)
	}
	return out, nil
}

func (r *supplierRepo) GetSuppliersWithActiveProducts(dbc dbctx.Context) ([]*domain.Supplier, error) {
	var out []*domain.Supplier
	err := supplierActiveProductsShape.apply(r.conn(dbc)).
		Order("company_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("suppliers with active products", err)
	}
	return out, nil
}

func (r *supplierRepo) GetSupplierWithProducts(dbc dbctx.Context, supplierID int) (*domain.Supplier, error) {
	var out domain.Supplier
	err := supplierDeepShape.apply(r.conn(dbc)).
		First(&out, "id = ?", supplierID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapError("supplier with products", err)
	}
	return &out, nil
}

func (r *supplierRepo) Delete(dbc dbctx.Context, id int) error {
	ok, err := r.Exists(dbc, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("delete: no supplier with id %d", id))
	}
	var dependents int64
	if err := r.conn(dbc).Model(&domain.Product{}).Where("supplier_id = ?", id).Count(&dependents).Error; err != nil {
		return MapError("delete supplier", err)
	}
	if dependents > 0 {
		return IntegrityError(fmt.Sprintf("supplier %d still has %d products", id, dependents))
	}
	return r.repo.Delete(dbc, id)
}
