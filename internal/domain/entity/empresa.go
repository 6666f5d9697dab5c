package entity

import "time"

// Empresa representa una empresa registrada, identificada por su RUC (Ecuador).
type Empresa struct {
	RUC               string // clave primaria, 13 dígitos
	RazonSocial       string
	CorreoElectronico string
	Direccion         string
	Telefono          string
	PaginaWeb         string
	LogoPath          *string // clave del logo en el almacenamiento; nil = sin logo
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasLogo informa si la empresa tiene un logo asociado.
func (e *Empresa) HasLogo() bool {
	return e.LogoPath != nil && *e.LogoPath != ""
}

// Clone devuelve una copia independiente (incluido el puntero del logo).
func (e *Empresa) Clone() *Empresa {
	if e == nil {
		return nil
	}
	c := *e
	if e.LogoPath != nil {
		p := *e.LogoPath
		c.LogoPath = &p
	}
	return &c
}
