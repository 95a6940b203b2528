package repos

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tradewind-labs/northwind-backend/internal/domain"
	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

var employeeOrdersShape = With("Orders", "Manager")

type EmployeeRepo interface {
	Repository[domain.Employee]
	GetEmployeesByManager(dbc dbctx.Context, managerID int) ([]*domain.Employee, error)
	GetEmployeesWithOrders(dbc dbctx.Context) ([]*domain.Employee, error)
}

type employeeRepo struct {
	*repo[domain.Employee, *domain.Employee]
	txr TxRunner
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return &employeeRepo{
		repo: newRepo[domain.Employee, *domain.Employee](db, baseLog.With("repo", "EmployeeRepo")),
		txr:  NewGormTxRunner(db),
	}
}

func (r *employeeRepo) GetEmployeesByManager(dbc dbctx.Context, managerID int) ([]*domain.Employee, error) {
	var out []*domain.Employee
	err := r.conn(dbc).
		Where("reports_to = ?", managerID).
		Order("last_name").
		Order("first_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("employees by manager", err)
	}
	return out, nil
}

func (r *employeeRepo) GetEmployeesWithOrders(dbc dbctx.Context) ([]*domain.Employee, error) {
	var out []*domain.Employee
	err := employeeOrdersShape.apply(r.conn(dbc)).
		Order("last_name").
		Find(&out).Error
	if err != nil {
		return nil, MapError("employees with orders", err)
	}
	return out, nil
}

func (r *employeeRepo) Add(dbc dbctx.Context, e *domain.Employee) (*domain.Employee, error) {
	if err := r.ensureAcyclicChain(dbc, e); err != nil {
		return nil, err
	}
	return r.repo.Add(dbc, e)
}

func (r *employeeRepo) Update(dbc dbctx.Context, e *domain.Employee) error {
	if err := r.ensureAcyclicChain(dbc, e); err != nil {
		return err
	}
	return r.repo.Update(dbc, e)
}

// ensureAcyclicChain walks the manager chain from the written employee's
// ReportsTo and rejects the write if the chain revisits any employee,
// keeping the hierarchy an acyclic forest. Validation happens at write
// time; the stored model is just a nullable manager id.
func (r *employeeRepo) ensureAcyclicChain(dbc dbctx.Context, e *domain.Employee) error {
	if e.ReportsTo == nil {
		return nil
	}
	seen := map[int]bool{}
	if e.ID != 0 {
		seen[e.ID] = true
	}
	next := e.ReportsTo
	for next != nil {
		id := *next
		if seen[id] {
			return ValidationError(fmt.Errorf("management chain for employee %d would form a cycle at %d", e.ID, id))
		}
		seen[id] = true
		var mgr domain.Employee
		err := r.conn(dbc).Select("id", "reports_to").First(&mgr, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ValidationError(fmt.Errorf("manager %d does not exist", id))
		}
		if err != nil {
			return MapError("validate manager chain", err)
		}
		next = mgr.ReportsTo
	}
	return nil
}

// Delete clears every subordinate's ReportsTo, then removes the employee.
// Both writes run in one transaction so no subordinate is ever left
// pointing at a deleted manager. Employees with orders are never removed.
func (r *employeeRepo) Delete(dbc dbctx.Context, id int) error {
	ok, err := r.Exists(dbc, id)
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("delete: no employee with id %d", id))
	}
	var dependents int64
	if err := r.conn(dbc).Model(&domain.Order{}).Where("employee_id = ?", id).Count(&dependents).Error; err != nil {
		return MapError("delete employee", err)
	}
	if dependents > 0 {
		return IntegrityError(fmt.Sprintf("employee %d still has %d orders", id, dependents))
	}

	run := func(txc dbctx.Context) error {
		err := r.conn(txc).
			Model(&domain.Employee{}).
			Where("reports_to = ?", id).
			Update("reports_to", nil).Error
		if err != nil {
			return MapError("reassign subordinates", err)
		}
		return r.repo.Delete(txc, id)
	}
	if dbc.Tx != nil {
		// Already inside a caller-owned transaction.
		return run(dbc)
	}
	return r.txr.InTx(ctxOf(dbc), run)
}
