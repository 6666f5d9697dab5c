package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/Empresas-api/docs"
	"github.com/jhoicas/Empresas-api/internal/application/usecase"
	"github.com/jhoicas/Empresas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Empresas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Empresas-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Empresas-api/internal/interfaces/http"
	"github.com/jhoicas/Empresas-api/pkg/config"
	"github.com/jhoicas/Empresas-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title       Empresas API
// @version     1.0
// @description API CRUD de empresas con logo.
// @host        localhost:8000
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Str("logo_storage", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var txRunner usecase.EmpresaTxRunner
	switch cfg.DB.Driver {
	case config.DBDriverMemory:
		log.Warn().Msg("DB_DRIVER=memory: los datos se pierden al reiniciar")
		txRunner = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		txRunner = postgres.NewTxRunner(pool)
	}

	var (
		logos      usecase.LogoStore
		uploadsDir string
	)
	switch cfg.Storage.Backend {
	case config.LogoStorageS3:
		s3Store, err := storage.NewS3(cfg.Storage.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento S3")
		}
		logos = s3Store
	default:
		fsStore, err := storage.NewFilesystem(cfg.Storage.UploadsDir)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de uploads")
		}
		logos = fsStore
		uploadsDir = fsStore.BasePath()
	}

	empresaUC := usecase.NewEmpresaUseCase(txRunner, logos, cfg.App.BaseURL, log)

	bodyLimit, _ := cfg.HTTP.BodyLimitBytes() // validado en config.Load
	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:          cfg.App.Name,
		BodyLimit:     bodyLimit,
		AllowedOrigin: cfg.CORS.AllowedOrigin,
		Logger:        log,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Empresas API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:  empresaUC,
		Logger:     log,
		UploadsDir: uploadsDir,
		AppName:    cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
