package repos

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

// DefaultRecentDays bounds GetRecentOrders when the caller passes no window.
const DefaultRecentDays = 30

var (
	orderRefsShape = With("Customer", "Employee", "Shipper")
	orderFullShape = With("Customer", "Employee", "Shipper", "OrderDetails", "OrderDetails.Product")
)

type OrderRepo interface {
	Repository[domain.Order]
	GetOrdersByCustomer(dbc dbctx.Context, customerID int) ([]*domain.Order, error)
	GetOrdersByEmployee(dbc dbctx.Context, employeeID int) ([]*domain.Order, error)
	GetRecentOrders(dbc dbctx.Context, daysBack int) ([]*domain.Order, error)
	GetOrdersWithDetails(dbc dbctx.Context) ([]*domain.Order, error)
	GetOrderWithDetails(dbc dbctx.Context, orderID int) (*domain.Order, error)
	GetPendingOrders(dbc dbctx.Context) ([]*domain.Order, error)
	GetShippedOrders(dbc dbctx.Context) ([]*domain.Order, error)
	AddOrderDetail(dbc dbctx.Context, line *domain.OrderDetail) (*domain.OrderDetail, error)
}

type orderRepo struct {
	*repo[domain.Order, *domain.Order]
	txr TxRunner
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{
		repo: newRepo[domain.Order, *domain.Order](db, baseLog.With("repo", "OrderRepo")),
		txr:  NewGormTxRunner(db),
	}
}

func (r *orderRepo) GetOrdersByCustomer(dbc dbctx.Context, customerID int) ([]*domain.Order, error) {
	var out []*domain.Order
	err := orderRefsShape.apply(r.conn(dbc)).
		Where("customer_id = ?", customerID).
		Order("order_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, MapError("orders by customer", err)
	}
	return out, nil
}

func (r *orderRepo) GetOrdersByEmployee(dbc dbctx.Context, employeeID int) ([]*domain.Order, error) {
	var out []*domain.Order
	err := orderRefsShape.apply(r.conn(dbc)).
		Where("employee_id = ?", employeeID).
		Order("order_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, MapError("orders by employee", err)
	}
	return out, nil
}

func (r *orderRepo) GetRecentOrders(dbc dbctx.Context, daysBack int) ([]*domain.Order, error) {
	if daysBack <= 0 {
		daysBack = DefaultRecentDays
	}
	cutoff := time.Now().AddDate(0, 0, -daysBack)
	var out []*domain.Order
	err := orderRefsShape.apply(r.conn(dbc)).
		Where("order_date >= ?", cutoff).
		Order("order_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, MapError("recent orders", err)
	}
	return out, nil
}

func (r *orderRepo) GetOrdersWithDetails(dbc dbctx.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	err := orderFullShape.apply(r.conn(dbc)).
		Order("order_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, MapError("orders with details", err)
	}
	return out, nil
}

func (r *orderRepo) GetOrderWithDetails(dbc dbctx.Context, orderID int) (*domain.Order, error) {
	var out domain.Order
	err := orderFullShape.apply(r.conn(dbc)).
		First(&out, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapError("order with details", err)
	}
	return &out, nil
}

// GetPendingOrders lists orders placed but not yet shipped, soonest due
// first; orders without a required date fall back to their order date.
func (r *orderRepo) GetPendingOrders(dbc dbctx.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	err := orderRefsShape.apply(r.conn(dbc)).
		Where("shipped_date IS NULL AND order_date IS NOT NULL").
		Order("COALESCE(required_date, order_date)").
		Find(&out).Error
	if err != nil {
		return nil, MapError("pending orders", err)
	}
	return out, nil
}

func (r *orderRepo) GetShippedOrders(dbc dbctx.Context) ([]*domain.Order, error) {
	var out []*domain.Order
	err := orderRefsShape.apply(r.conn(dbc)).
		Where("shipped_date IS NOT NULL").
		Order("shipped_date DESC").
		Find(&out).Error
	if err != nil {
		return nil, MapError("shipped orders", err)
	}
	return out, nil
}

// AddOrderDetail appends a line to an existing order. The (order, product)
// pair is the line's identity; a second line for the same pair is an
// integrity conflict, not an update.
func (r *orderRepo) AddOrderDetail(dbc dbctx.Context, line *domain.OrderDetail) (*domain.OrderDetail, error) {
	if err := line.Validate(); err != nil {
		return nil, ValidationError(err)
	}
	ok, err := r.Exists(dbc, line.OrderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NotFoundError(fmt.Sprintf("add order line: no order with id %d", line.OrderID))
	}
	var products int64
	if err := r.conn(dbc).Model(&domain.Product{}).Where("id = ?", line.ProductID).Count(&products).Error; err != nil {
		return nil, MapError("add order line", err)
	}
	if products == 0 {
		return nil, NotFoundError(fmt.Sprintf("add order line: no product with id %d", line.ProductID))
	}
	var existing int64
	if err := r.conn(dbc).Model(&domain.OrderDetail{}).
		Where("order_id = ? AND product_id = ?", line.OrderID, line.ProductID).
		Count(&existing).Error; err != nil {
		return nil, MapError("add order line", err)
	}
	if existing > 0 {
		return nil, IntegrityError(fmt.Sprintf("order %d already has a line for product %d", line.OrderID, line.ProductID))
	}
	if err := r.conn(dbc).Omit(clause.Associations).Create(line).Error; err != nil {
		return nil, MapError("add order line", err)
	}
	return line, nil
}

// Delete removes an order and cascades its lines in one transaction;
// composite-key child rows have no independent existence.
func (r *orderRepo) Delete(dbc dbctx.Context, id int) error {
	ok, err := r.Exists(dbc, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("delete: no order with id %d", id))
	}
	run := func(txc dbctx.Context) error {
		if err := r.conn(txc).Where("order_id = ?", id).Delete(&domain.OrderDetail{}).Error; err != nil {
			return MapError("delete order lines", err)
		}
		return r.repo.Delete(txc, id)
	}
	if dbc.Tx != nil {
		return run(dbc)
	}
	return r.txr.InTx(ctxOf(dbc), run)
}
