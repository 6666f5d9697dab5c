package http

import (
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/dto"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/pkg/logger"
)

// EmpresaHandler maneja las peticiones HTTP para el recurso Empresa.
type EmpresaHandler struct {
	uc       *usecase.EmpresaUseCase
	validate *validator.Validate
	log      *logger.Logger
}

// NewEmpresaHandler construye el handler inyectando el caso de uso.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase, log *logger.Logger) *EmpresaHandler {
	return &EmpresaHandler{uc: uc, validate: newValidator(), log: log.Named("http")}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         empresas
// @Accept       multipart/form-data
// @Produce      json
// @Param        ruc           formData  string  true   "RUC (13 dígitos)"
// @Param        razon_social  formData  string  true   "Razón social"
// @Param        correo        formData  string  true   "Correo electrónico"
// @Param        direccion     formData  string  true   "Dirección"
// @Param        telefono      formData  string  true   "Teléfono"
// @Param        pagina_web    formData  string  true   "Página web"
// @Param        logo          formData  file    false  "Logo"
// @Success      201  {object}  dto.EmpresaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /empresas/ [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	in, err := parseEmpresaInput(c)
	if err != nil {
		return badBody(c, err)
	}
	req := in.createRequest()
	if err := h.validate.Struct(req); err != nil {
		return h.invalid(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), req, in.logo)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar empresas o buscar por RUC
// @Description  Sin parámetros devuelve todas las empresas; con ?ruc= devuelve solo esa empresa.
// @Tags         empresas
// @Produce      json
// @Param        ruc  query  string  false  "RUC exacto"
// @Success      200  {array}   dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresas/ [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	if ruc := c.Query("ruc"); ruc != "" {
		out, err := h.uc.GetByRUC(c.UserContext(), ruc)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Actualizar empresa (completa)
// @Tags         empresas
// @Accept       multipart/form-data
// @Produce      json
// @Param        ruc           path      string  true   "RUC"
// @Param        razon_social  formData  string  true   "Razón social"
// @Param        correo        formData  string  true   "Correo electrónico"
// @Param        direccion     formData  string  true   "Dirección"
// @Param        telefono      formData  string  true   "Teléfono"
// @Param        pagina_web    formData  string  true   "Página web"
// @Param        logo          formData  file    false  "Nuevo logo"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /empresas/{ruc} [put]
func (h *EmpresaHandler) Replace(c *fiber.Ctx) error {
	in, err := parseEmpresaInput(c)
	if err != nil {
		return badBody(c, err)
	}
	req := in.replaceRequest()
	if err := h.validate.Struct(req); err != nil {
		return h.invalid(c, err)
	}
	out, err := h.uc.Replace(c.UserContext(), c.Params("ruc"), req, in.logo)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar empresa (parcial)
// @Description  Solo se aplican los campos enviados; un campo vacío se ignora.
// @Tags         empresas
// @Accept       multipart/form-data
// @Produce      json
// @Param        ruc           path      string  true   "RUC"
// @Param        razon_social  formData  string  false  "Razón social"
// @Param        correo        formData  string  false  "Correo electrónico"
// @Param        direccion     formData  string  false  "Dirección"
// @Param        telefono      formData  string  false  "Teléfono"
// @Param        pagina_web    formData  string  false  "Página web"
// @Param        logo          formData  file    false  "Nuevo logo"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /empresas/{ruc} [patch]
func (h *EmpresaHandler) Patch(c *fiber.Ctx) error {
	in, err := parseEmpresaInput(c)
	if err != nil {
		return badBody(c, err)
	}
	req := in.patchRequest()
	if err := h.validate.Struct(req); err != nil {
		return h.invalid(c, err)
	}
	out, err := h.uc.Patch(c.UserContext(), c.Params("ruc"), req, in.logo)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         empresas
// @Produce      json
// @Param        ruc  path  string  true  "RUC"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresas/{ruc} [delete]
func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("ruc"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Logo godoc
// @Summary      Obtener logo de la empresa
// @Tags         empresas
// @Produce      octet-stream
// @Param        ruc  path  string  true  "RUC"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /empresas/{ruc}/logo [get]
func (h *EmpresaHandler) Logo(c *fiber.Ctx) error {
	logo, err := h.uc.Logo(c.UserContext(), c.Params("ruc"))
	if err != nil {
		return h.fail(c, err)
	}
	if ext := filepath.Ext(logo.Filename); ext != "" {
		c.Type(ext)
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	}
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(logo.Data)
}

func (h *EmpresaHandler) fail(c *fiber.Ctx, err error) error {
	status, code, msg := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error procesando petición")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func (h *EmpresaHandler) invalid(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "datos de la empresa inválidos",
		Fields:  validationFields(err),
	})
}

func badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
}
