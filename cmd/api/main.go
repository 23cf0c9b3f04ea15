package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rezabtuhin/catalog-admin/internal/application/usecase"
	infrapdf "github.com/rezabtuhin/catalog-admin/internal/infrastructure/pdf"
	"github.com/rezabtuhin/catalog-admin/internal/infrastructure/postgres"
	httpRouter "github.com/rezabtuhin/catalog-admin/internal/interfaces/http"
	"github.com/rezabtuhin/catalog-admin/pkg/config"
	"github.com/rezabtuhin/catalog-admin/pkg/logger"

	_ "github.com/rezabtuhin/catalog-admin/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	catalogReader := postgres.NewCatalogReader(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewCatalogReportGenerator()

	catalogUC := usecase.NewCatalogUseCase(catalogReader, variantRepo, cfg.Catalog.PerPage, cfg.Catalog.BasePath)
	exportUC := usecase.NewExportCatalogUseCase(catalogReader, pdfGenerator)
	createUC := usecase.NewCreateProductUseCase(txRunner, productRepo)
	variantUC := usecase.NewVariantUseCase(variantRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	baseLogger := log.Zerolog()
	app.Use(httpRouter.RequestID(&baseLogger))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Catalog Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		ExportUC:  exportUC,
		CreateUC:  createUC,
		VariantUC: variantUC,
		ListPath:  cfg.Catalog.BasePath,
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
