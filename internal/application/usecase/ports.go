package usecase

import (
	"context"

	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// EmpresaTxRunner ejecuta fn dentro de una transacción, con un repositorio atado a ella.
// Hace Commit si fn devuelve nil y Rollback en cualquier otro caso.
type EmpresaTxRunner interface {
	Run(ctx context.Context, fn func(repo repository.EmpresaRepository) error) error
}

// LogoStore persiste los logos fuera de la fila de la empresa.
// Stage escribe el archivo con un nombre provisional y devuelve la clave definitiva
// ({ruc}_{nombre}) junto con la provisional; Promote lo publica bajo la definitiva.
// Retrieve devuelve un error que cumple errors.Is(err, domain.ErrNotFound) si la clave no existe.
// Delete es idempotente y también descarta un logo provisional.
type LogoStore interface {
	Stage(ctx context.Context, ruc, filename string, data []byte) (key, staged string, err error)
	Promote(ctx context.Context, staged, key string) error
	Retrieve(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
