package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Nombres de constraints del esquema, usados para traducir violaciones de unicidad.
const (
	constraintEmpresaPK     = "empresa_pkey"
	constraintEmpresaCorreo = "empresa_correo_electronico_key"
)

// EnsureSchema crea la tabla empresa si no existe. Es idempotente; no hay migraciones.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
