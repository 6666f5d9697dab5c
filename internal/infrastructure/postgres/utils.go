package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Empresas-api/internal/domain"
)

// Querier lo cumplen *pgxpool.Pool y pgx.Tx, así los repos sirven con o sin transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr, true
	}
	return nil, false
}

// translateUniqueViolation convierte violaciones de unicidad de la tabla empresa en errores de dominio.
func translateUniqueViolation(err error) error {
	pgErr, ok := isUniqueViolation(err)
	if !ok {
		return nil
	}
	switch pgErr.ConstraintName {
	case constraintEmpresaCorreo:
		return domain.ErrEmailAlreadyExists
	case constraintEmpresaPK:
		return domain.ErrDuplicate
	default:
		return domain.ErrDuplicate
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
