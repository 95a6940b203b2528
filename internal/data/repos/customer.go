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
	customerOrdersShape = With("Orders")
	customerDeepShape   = With("Orders", "Orders.OrderDetails", "Orders.OrderDetails.Product")
)

type CustomerRepo interface {
	Repository[domain.Customer]
	GetCustomersByCountry(dbc dbctx.Context, country string) ([]*domain.Customer, error)
	GetCustomersWithOrders(dbc dbctx.Context) ([]*domain.Customer, error)
	GetCustomerWithOrders(dbc dbctx.Context, customerID int) (*domain.Customer, error)
	GetDistinctCountries(dbc dbctx.Context) ([]string, error)
}

type customerRepo struct {
	*repo[domain.Customer, *domain.Customer]
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{repo: newRepo[domain.Customer, *domain.Customer](db, baseLog.With("repo", "CustomerRepo"))}
}

func (r *customerRepo) GetCustomersByCountry(dbc dbctx.Context, country string) ([]*domain.Customer, error) {
	var out []*domain.Customer
	err := r.conn(dbc).
		Where("country = ?", country).
		Order("company_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("customers by country", err)
	}
	return out, nil
}

// GetCustomersWithOrders returns only customers having at least one order.
// The existence test is a semi-join so parents are never duplicated per
// matching order.
func (r *customerRepo) GetCustomersWithOrders(dbc dbctx.Context) ([]*domain.Customer, error) {
	var out []*domain.Customer
	err := customerOrdersShape.apply(r.conn(dbc)).
		Where("EXISTS (SELECT 1 FROM orders WHERE orders.customer_id = customers.id)").
		Order("company_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("customers with orders", err)
	}
	return out, nil
}

// GetCustomerWithOrders resolves the full purchase graph for one customer:
// orders, their lines, and each line's product.
func (r *customerRepo) GetCustomerWithOrders(dbc dbctx.Context, customerID int) (*domain.Customer, error) {
	var out domain.Customer
	err := customerDeepShape.apply(r.conn(dbc)).
		First(&out, "id = ?", customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapError("customer with orders", err)
	}
	return &out, nil
}

func (r *customerRepo) GetDistinctCountries(dbc dbctx.Context) ([]string, error) {
	var out []string
	err := r.conn(dbc).
		Model(&domain.Customer{}).
		Where("country IS NOT NULL").
		Distinct("country").
		Order("country").
		Pluck("country", &out).Error
	if err != nil {
		return nil, MapError("distinct countries", err)
	}
	return out, nil
}

func (r *customerRepo) Delete(dbc dbctx.Context, id int) error {
	ok, err := r.Exists(dbc, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("delete: no customer with id %d", id))
	}
	var dependents int64
	if err := r.conn(dbc).Model(&domain.Order{}).Where("customer_id = ?", id).Count(&dependents).Error; err != nil {
		return MapError("delete customer", err)
	}
	if dependents > 0 {
		return IntegrityError(fmt.Sprintf("customer %d still has %d orders", id, dependents))
	}
	return r.repo.Delete(dbc, id)
}
