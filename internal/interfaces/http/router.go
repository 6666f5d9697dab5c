package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmpresaUC  *usecase.EmpresaUseCase
	Logger     *logger.Logger
	UploadsDir string // si no está vacío se sirve estático en /uploads
	AppName    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	if deps.UploadsDir != "" {
		app.Static("/uploads", deps.UploadsDir, fiber.Static{Browse: false})
	}

	empresas := app.Group("/empresas")
	h := NewEmpresaHandler(deps.EmpresaUC, deps.Logger)
	empresas.Post("/", h.Create)
	empresas.Get("/", h.List)
	empresas.Get("/:ruc/logo", h.Logo)
	empresas.Put("/:ruc", h.Replace)
	empresas.Patch("/:ruc", h.Patch)
	empresas.Delete("/:ruc", h.Delete)
}
