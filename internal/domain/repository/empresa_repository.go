package repository

import (
	"context"

	"github.com/jhoicas/Empresas-api/internal/domain/entity"
)

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
// La implementación vive en infrastructure. GetByRUC devuelve (nil, nil) si no existe.
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entity.Empresa) error
	GetByRUC(ctx context.Context, ruc string) (*entity.Empresa, error)
	List(ctx context.Context) ([]*entity.Empresa, error)
	Update(ctx context.Context, empresa *entity.Empresa) error
	Delete(ctx context.Context, ruc string) error
}
