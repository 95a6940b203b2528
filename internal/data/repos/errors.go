package repos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the operation referenced an id with no record.
	ErrNotFound = errors.New("record not found")
	// ErrIntegrity indicates a restrict rule or store constraint blocked a write.
	ErrIntegrity = errors.New("integrity violation")
	// ErrValidation indicates a scalar field constraint failed before the store.
	ErrValidation = errors.New("validation failed")
)

// NotFoundError tags an error as a missing-record failure.
func NotFoundError(msg string) error {
	return errors.Join(ErrNotFound, errors.New(strings.TrimSpace(msg)))
}

// IntegrityError tags an error as a referential-integrity conflict.
func IntegrityError(msg string) error {
	return errors.Join(ErrIntegrity, errors.New(strings.TrimSpace(msg)))
}

// ValidationError tags an entity validation failure.
func ValidationError(err error) error {
	return errors.Join(ErrValidation, err)
}

// MapError translates store-level failures into the repository taxonomy.
// Already-tagged errors pass through; unknown failures keep their cause
// wrapped with the failing operation.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrIntegrity) || errors.Is(err, ErrValidation) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, errors.Join(ErrNotFound, err))
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, errors.Join(ErrIntegrity, err))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23503", "23505", "23514":
			// foreign_key_violation, unique_violation, check_violation
			return fmt.Errorf("%s: %w", op, errors.Join(ErrIntegrity, err))
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "check constraint") {
		return fmt.Errorf("%s: %w", op, errors.Join(ErrIntegrity, err))
	}

	return fmt.Errorf("%s: %w", op, err)
}
