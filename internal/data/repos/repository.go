package repos

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tradewind-labs/northwind-backend/internal/platform/dbctx"
	"github.com/tradewind-labs/northwind-backend/internal/platform/logger"
)

// Entity constrains the generic repository to pointer types exposing an
// integer identity and scalar validation.
type Entity[T any] interface {
	*T
	GetID() int
	Validate() error
}

// Repository is the substitutable CRUD-and-query capability every
// specialized repository composes with. Implementations translate Find
// conditions into the store's native filtering; results are detached copies
// and mutations only take effect when passed back through Update.
type Repository[T any] interface {
	GetByID(dbc dbctx.Context, id int) (*T, error)
	GetAll(dbc dbctx.Context) ([]*T, error)
	Find(dbc dbctx.Context, conds ...Cond) ([]*T, error)
	Add(dbc dbctx.Context, entity *T) (*T, error)
	Update(dbc dbctx.Context, entity *T) error
	Delete(dbc dbctx.Context, id int) error
	Exists(dbc dbctx.Context, id int) (bool, error)
	Count(dbc dbctx.Context) (int64, error)
}

// Op is a comparison operator in a Find condition.
type Op string

const (
	OpEq   Op = "="
	OpNe   Op = "<>"
	OpGt   Op = ">"
	OpGte  Op = ">="
	OpLt   Op = "<"
	OpLte  Op = "<="
	OpLike Op = "LIKE"
)

// Cond is a declarative column/operator/value predicate translated into a
// parameterized WHERE clause, never evaluated in memory.
type Cond struct {
	Field string
	Op    Op
	Value interface{}
}

func Eq(field string, value interface{}) Cond   { return Cond{Field: field, Op: OpEq, Value: value} }
func Ne(field string, value interface{}) Cond   { return Cond{Field: field, Op: OpNe, Value: value} }
func Gt(field string, value interface{}) Cond   { return Cond{Field: field, Op: OpGt, Value: value} }
func Gte(field string, value interface{}) Cond  { return Cond{Field: field, Op: OpGte, Value: value} }
func Lt(field string, value interface{}) Cond   { return Cond{Field: field, Op: OpLt, Value: value} }
func Lte(field string, value interface{}) Cond  { return Cond{Field: field, Op: OpLte, Value: value} }
func Like(field string, value interface{}) Cond { return Cond{Field: field, Op: OpLike, Value: value} }

var columnPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func (c Cond) apply(tx *gorm.DB) (*gorm.DB, error) {
	if !columnPattern.MatchString(c.Field) {
		return nil, ValidationError(fmt.Errorf("invalid filter column %q", c.Field))
	}
	switch c.Op {
	case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpLike:
	default:
		return nil, ValidationError(fmt.Errorf("invalid filter operator %q", c.Op))
	}
	return tx.Where(fmt.Sprintf("%s %s ?", c.Field, c.Op), c.Value), nil
}

type repo[T any, PT Entity[T]] struct {
	db  *gorm.DB
	log *logger.Logger
}

func newRepo[T any, PT Entity[T]](db *gorm.DB, log *logger.Logger) *repo[T, PT] {
	return &repo[T, PT]{db: db, log: log}
}

// conn resolves the handle for one call: the caller's transaction when
// present, the repository's own connection otherwise.
func (r *repo[T, PT]) conn(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if dbc.Ctx != nil {
		transaction = transaction.WithContext(dbc.Ctx)
	}
	return transaction
}

func (r *repo[T, PT]) GetByID(dbc dbctx.Context, id int) (*T, error) {
	var out T
	err := r.conn(dbc).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Absence is a normal outcome, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, MapError("get by id", err)
	}
	return &out, nil
}

func (r *repo[T, PT]) GetAll(dbc dbctx.Context) ([]*T, error) {
	var out []*T
	if err := r.conn(dbc).Find(&out).Error; err != nil {
		return nil, MapError("get all", err)
	}
	return out, nil
}

func (r *repo[T, PT]) Find(dbc dbctx.Context, conds ...Cond) ([]*T, error) {
	tx := r.conn(dbc).Model(new(T))
	var err error
	for _, c := range conds {
		if tx, err = c.apply(tx); err != nil {
			return nil, err
		}
	}
	var out []*T
	if err := tx.Find(&out).Error; err != nil {
		return nil, MapError("find", err)
	}
	return out, nil
}

func (r *repo[T, PT]) Add(dbc dbctx.Context, entity *T) (*T, error) {
	pe := PT(entity)
	if err := pe.Validate(); err != nil {
		return nil, ValidationError(err)
	}
	if err := r.conn(dbc).Omit(clause.Associations).Create(entity).Error; err != nil {
		return nil, MapError("add", err)
	}
	return entity, nil
}

func (r *repo[T, PT]) Update(dbc dbctx.Context, entity *T) error {
	pe := PT(entity)
	if err := pe.Validate(); err != nil {
		return ValidationError(err)
	}
	ok, err := r.Exists(dbc, pe.GetID())
	if err != nil {
		return err
	}
	if !ok {
		return NotFoundError(fmt.Sprintf("update: no record with id %d", pe.GetID()))
	}
	// Save replaces the full scalar field set; associations are never
	// written through updates.
	if err := r.conn(dbc).Omit(clause.Associations).Save(entity).Error; err != nil {
		return MapError("update", err)
	}
	return nil
}

func (r *repo[T, PT]) Delete(dbc dbctx.Context, id int) error {
	res := r.conn(dbc).Delete(new(T), id)
	if res.Error != nil {
		return MapError("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return NotFoundError(fmt.Sprintf("delete: no record with id %d", id))
	}
	return nil
}

func (r *repo[T, PT]) Exists(dbc dbctx.Context, id int) (bool, error) {
	var count int64
	if err := r.conn(dbc).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, MapError("exists", err)
	}
	return count > 0, nil
}

func (r *repo[T, PT]) Count(dbc dbctx.Context) (int64, error) {
	var count int64
	if err := r.conn(dbc).Model(new(T)).Count(&count).Error; err != nil {
		return 0, MapError("count", err)
	}
	return count, nil
}
