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
	productDetailsShape = With("Category", "Supplier")
	productHistoryShape = With("Category", "Supplier", "OrderDetails", "OrderDetails.Order")
)

type ProductRepo interface {
	Repository[domain.Product]
	GetProductsByCategory(dbc dbctx.Context, categoryID int) ([]*domain.Product, error)
	GetLowStockProducts(dbc dbctx.Context) ([]*domain.Product, error)
	GetDiscontinuedProducts(dbc dbctx.Context) ([]*domain.Product, error)
	GetProductsWithDetails(dbc dbctx.Context) ([]*domain.Product, error)
	GetProductWithOrderHistory(dbc dbctx.Context, productID int) (*domain.Product, error)
}

type productRepo struct {
	*repo[domain.Product, *domain.Product]
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{repo: newRepo[domain.Product, *domain.Product](db, baseLog.With("repo", "ProductRepo"))}
}

func (r *productRepo) GetProductsByCategory(dbc dbctx.Context, categoryID int) ([]*domain.Product, error) {
	var out []*domain.Product
	err := With("Supplier").apply(r.conn(dbc)).
		Where("category_id = ?", categoryID).
		Order("product_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("products by category", err)
	}
	return out, nil
}

// GetLowStockProducts lists active products whose stock has fallen below
// their reorder level. The comparison runs in the store, so rows with an
// unknown stock or reorder level never match.
func (r *productRepo) GetLowStockProducts(dbc dbctx.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	err := productDetailsShape.apply(r.conn(dbc)).
		Where("units_in_stock < reorder_level").
		Where("discontinued = ?", false).
		Order("product_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("low stock products", err)
	}
	return out, nil
}

func (r *productRepo) GetDiscontinuedProducts(dbc dbctx.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	err := With("Category").apply(r.conn(dbc)).
		Where("discontinued = ?", true).
		Find(&out).Error
	if err != nil {
		return nil, MapError("discontinued products", err)
	}
	return out, nil
}

func (r *productRepo) GetProductsWithDetails(dbc dbctx.Context) ([]*domain.Product, error) {
	var out []*domain.Product
	err := productDetailsShape.apply(r.conn(dbc)).
		Order("product_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("products with details", err)
	}
	return out, nil
}

func (r *productRepo) GetProductWithOrderHistory(dbc dbctx.Context, productID int) (*domain.Product, error) {
	var out domain.Product
	err := productHistoryShape.apply(r.conn(dbc)).
		First(&out, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapError("product with order history", err)
	}
	return &out, nil
}

func (r *productRepo) Delete(dbc dbctx.Context, id int) error {
	ok, err := r.Exists(dbc, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("delete: no product with id %d", id))
	}
	var dependents int64
	if err := r.conn(dbc).Model(&domain.OrderDetail{}).Where("product_id = ?", id).Count(&dependents).Error; err != nil {
		return MapError("delete product", err)
	}
	if dependents > 0 {
		return IntegrityError(fmt.Sprintf("product %d still appears on %d order lines", id, dependents))
	}
	return r.repo.Delete(dbc, id)
}
