package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// Asegura que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

const empresaColumns = `ruc, razon_social, correo_electronico, direccion, telefono, pagina_web, logo_path, created_at, updated_at`

// EmpresaRepo implementación de EmpresaRepository sobre PostgreSQL (usable con pool o tx).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *EmpresaRepo) Create(ctx context.Context, e *entity.Empresa) error {
	query := `
		INSERT INTO empresa (` + empresaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.RUC, e.RazonSocial, e.CorreoElectronico, e.Direccion,
		e.Telefono, e.PaginaWeb, e.LogoPath, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if derr := translateUniqueViolation(err); derr != nil {
			return derr
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByRUC obtiene una empresa por RUC. (nil, nil) si no existe.
func (r *EmpresaRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresa WHERE ruc = $1`
	e, err := scanEmpresa(r.q.QueryRow(ctx, query, ruc))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return e, nil
}

// List devuelve todas las empresas ordenadas por razón social.
func (r *EmpresaRepo) List(ctx context.Context) ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresa ORDER BY razon_social, ruc`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Empresa, 0)
	for rows.Next() {
		e, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update sobrescribe los campos editables y el logo. domain.ErrNotFound si no existe.
func (r *EmpresaRepo) Update(ctx context.Context, e *entity.Empresa) error {
	query := `
		UPDATE empresa SET razon_social = $2, correo_electronico = $3, direccion = $4,
		       telefono = $5, pagina_web = $6, logo_path = $7, updated_at = $8
		WHERE ruc = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.RUC, e.RazonSocial, e.CorreoElectronico, e.Direccion,
		e.Telefono, e.PaginaWeb, e.LogoPath, e.UpdatedAt,
	)
	if err != nil {
		if derr := translateUniqueViolation(err); derr != nil {
			return derr
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa por RUC. domain.ErrNotFound si no existe.
func (r *EmpresaRepo) Delete(ctx context.Context, ruc string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM empresa WHERE ruc = $1`, ruc)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmpresa(row pgx.Row) (*entity.Empresa, error) {
	var e entity.Empresa
	if err := row.Scan(
		&e.RUC, &e.RazonSocial, &e.CorreoElectronico, &e.Direccion,
		&e.Telefono, &e.PaginaWeb, &e.LogoPath, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
