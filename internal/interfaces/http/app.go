package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Empresas-api/pkg/logger"
)

// AppConfig parámetros del servidor Fiber.
type AppConfig struct {
	Name          string
	BodyLimit     int    // bytes; 0 = valor por defecto de Fiber
	AllowedOrigin string // origen CORS permitido
	Logger        *logger.Logger
}

// NewApp crea la aplicación Fiber con los middlewares globales: request id, recover,
// log de peticiones y CORS para un único origen.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(recover.New())
	app.Use(RequestLogger(cfg.Logger.Named("access")))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "*",
	}))

	return app
}
