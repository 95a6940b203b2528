package repos

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

// Category list queries and their fetch shapes. The "active products" shape
// is a filtered eager load: the returned collections contain only
// non-discontinued products, not just a count.
var (
	categoryProductsShape       = With("Products")
	categoryActiveProductsShape = Shape{}.Filtered("Products", "discontinued = ?", false)
	categoryDeepShape           = With("Products", "Products.Supplier")
)

type CategoryRepo interface {
	Repository[domain.Category]
	GetCategoriesWithProducts(dbc dbctx.Context) ([]*domain.Category, error)
	GetCategoriesWithActiveProducts(dbc dbctx.Context) ([]*domain.Category, error)
	GetCategoryWithProducts(dbc dbctx.Context, categoryID int) (*domain.Category, error)
}

type categoryRepo struct {
	*repo[domain.Category, *domain.Category]
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{repo: newRepo[domain.Category, *domain.Category](db, baseLog.With("repo", "CategoryRepo"))}
}

func (r *categoryRepo) GetCategoriesWithProducts(dbc dbctx.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	err := categoryProductsShape.apply(r.conn(dbc)).
		Order("category_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("categories with products", err)
	}
	return out, nil
}

func (r *categoryRepo) GetCategoriesWithActiveProducts(dbc dbctx.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	err := categoryActiveProductsShape.apply(r.conn(dbc)).
		Order("category_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("categories with active products", err)
	}
	return out, nil
}

func (r *categoryRepo) GetCategoryWithProducts(dbc dbctx.Context, categoryID int) (*domain.Category, error) {
	var out domain.Category
	err := categoryDeepShape.apply(r.conn(dbc)).
		First(&out, "id = ?", categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapError("category with products", err)
	}
	return &out, nil
}

// Delete restricts: a category owning products is never removed and its
// products are never cascade-deleted.
func (r *categoryRepo) Delete(dbc dbctx.Context, id int) error {
	ok, err := r.Exists(dbc, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("delete: no category with id %d", id))
	}
	var dependents int64
	if err := r.conn(dbc).Model(&domain.Product{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
		return MapError("delete category", err)
	}
	if dependents > 0 {
		return IntegrityError(fmt.Sprintf("category %d still has %d products", id, dependents))
	}
	return r.repo.Delete(dbc, id)
}
