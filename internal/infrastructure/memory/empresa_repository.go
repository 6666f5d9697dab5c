// Package memory implementa el almacenamiento de empresas en memoria (DB_DRIVER=memory).
// Sirve para desarrollo local y tests; los datos se pierden al reiniciar.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/Empresas-api/internal/domain"
	"github.com/jhoicas/Empresas-api/internal/domain/entity"
	"github.com/jhoicas/Empresas-api/internal/domain/repository"
)

// Store tabla de empresas en memoria. Las transacciones se serializan con un mutex
// y trabajan sobre una copia que solo se publica en el commit.
type Store struct {
	mu   sync.Mutex
	rows map[string]*entity.Empresa

	// FailCommit fuerza un error en el próximo commit (tests de consistencia).
	FailCommit error
}

// NewStore crea un almacenamiento vacío.
func NewStore() *Store {
	return &Store{rows: make(map[string]*entity.Empresa)}
}

// Run ejecuta fn en una transacción aislada: Commit si devuelve nil, descarte en otro caso.
func (s *Store) Run(ctx context.Context, fn func(repo repository.EmpresaRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &EmpresaRepo{rows: make(map[string]*entity.Empresa, len(s.rows))}
	for k, v := range s.rows {
		tx.rows[k] = v.Clone()
	}
	if err := fn(tx); err != nil {
		return err
	}
	if s.FailCommit != nil {
		err := s.FailCommit
		s.FailCommit = nil
		return fmt.Errorf("commit transaction: %w", err)
	}
	s.rows = tx.rows
	return nil
}

// Len número de empresas confirmadas.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo vista transaccional sobre la tabla en memoria.
type EmpresaRepo struct {
	rows map[string]*entity.Empresa
}

// Create inserta la empresa respetando la unicidad de RUC y correo.
func (r *EmpresaRepo) Create(_ context.Context, e *entity.Empresa) error {
	if _, ok := r.rows[e.RUC]; ok {
		return domain.ErrDuplicate
	}
	if r.emailTaken(e.CorreoElectronico, e.RUC) {
		return domain.ErrEmailAlreadyExists
	}
	r.rows[e.RUC] = e.Clone()
	return nil
}

// GetByRUC devuelve (nil, nil) si no existe.
func (r *EmpresaRepo) GetByRUC(_ context.Context, ruc string) (*entity.Empresa, error) {
	e, ok := r.rows[ruc]
	if !ok {
		return nil, nil
	}
	return e.Clone(), nil
}

// List devuelve las empresas ordenadas por razón social y RUC.
func (r *EmpresaRepo) List(_ context.Context) ([]*entity.Empresa, error) {
	list := make([]*entity.Empresa, 0, len(r.rows))
	for _, e := range r.rows {
		list = append(list, e.Clone())
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].RazonSocial != list[j].RazonSocial {
			return list[i].RazonSocial < list[j].RazonSocial
		}
		return list[i].RUC < list[j].RUC
	})
	return list, nil
}

// Update reemplaza la fila existente. domain.ErrNotFound si no existe.
func (r *EmpresaRepo) Update(_ context.Context, e *entity.Empresa) error {
	if _, ok := r.rows[e.RUC]; !ok {
		return domain.ErrNotFound
	}
	if r.emailTaken(e.CorreoElectronico, e.RUC) {
		return domain.ErrEmailAlreadyExists
	}
	r.rows[e.RUC] = e.Clone()
	return nil
}

// Delete borra la fila. domain.ErrNotFound si no existe.
func (r *EmpresaRepo) Delete(_ context.Context, ruc string) error {
	if _, ok := r.rows[ruc]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, ruc)
	return nil
}

func (r *EmpresaRepo) emailTaken(email, exceptRUC string) bool {
	for ruc, e := range r.rows {
		if ruc != exceptRUC && e.CorreoElectronico == email {
			return true
		}
	}
	return false
}
