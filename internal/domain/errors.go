package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("la empresa con este RUC ya existe")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado por otra empresa")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrStorageWrite       = errors.New("no se pudo guardar el logo")
)
