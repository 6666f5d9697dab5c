package dto

import "time"

// CreateEmpresaRequest entrada para registrar una empresa. Correo se guarda como correo_electronico.
type CreateEmpresaRequest struct {
	RUC         string `json:"ruc" validate:"required,ruc"`
	RazonSocial string `json:"razon_social" validate:"required,max=255"`
	Correo      string `json:"correo" validate:"required,max=255"`
	Direccion   string `json:"direccion" validate:"required,max=500"`
	Telefono    string `json:"telefono" validate:"required,max=20"`
	PaginaWeb   string `json:"pagina_web" validate:"required,max=255"`
}

// ReplaceEmpresaRequest entrada de actualización completa (PUT): todos los campos son obligatorios.
type ReplaceEmpresaRequest struct {
	RazonSocial string `json:"razon_social" validate:"required,max=255"`
	Correo      string `json:"correo" validate:"required,max=255"`
	Direccion   string `json:"direccion" validate:"required,max=500"`
	Telefono    string `json:"telefono" validate:"required,max=20"`
	PaginaWeb   string `json:"pagina_web" validate:"required,max=255"`
}

// PatchEmpresaRequest entrada de actualización parcial (PATCH).
// nil o cadena vacía = campo ausente; el valor almacenado no cambia.
type PatchEmpresaRequest struct {
	RazonSocial *string `json:"razon_social" validate:"omitempty,max=255"`
	Correo      *string `json:"correo" validate:"omitempty,max=255"`
	Direccion   *string `json:"direccion" validate:"omitempty,max=500"`
	Telefono    *string `json:"telefono" validate:"omitempty,max=20"`
	PaginaWeb   *string `json:"pagina_web" validate:"omitempty,max=255"`
}

// LogoUpload archivo de logo recibido en la petición.
type LogoUpload struct {
	Filename string
	Data     []byte
}

// LogoFile contenido de un logo almacenado.
type LogoFile struct {
	Filename string
	Data     []byte
}

// EmpresaResponse vista pública de una empresa. LogoURL es nil si no tiene logo.
type EmpresaResponse struct {
	RUC         string    `json:"ruc"`
	RazonSocial string    `json:"razon_social"`
	Correo      string    `json:"correo"`
	Direccion   string    `json:"direccion"`
	Telefono    string    `json:"telefono"`
	PaginaWeb   string    `json:"pagina_web"`
	LogoURL     *string   `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
