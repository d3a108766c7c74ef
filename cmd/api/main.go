package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/application/usecase"
	"github.com/jhoicas/facturador-api/internal/domain/document"
	infrapdf "github.com/jhoicas/facturador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/facturador-api/internal/infrastructure/postgres"
	"github.com/jhoicas/facturador-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/facturador-api/internal/interfaces/http"
	"github.com/jhoicas/facturador-api/pkg/config"
	"github.com/jhoicas/facturador-api/pkg/logger"
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	settingsRepo := postgres.NewSettingsRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	numbers := document.NewNumberGenerator()
	createDocumentUC := billing.NewCreateDocumentUseCase(
		txRunner, docRepo, clientRepo, settingsRepo, numbers,
	)

	pdfStore, err := storage.NewFileStore(cfg.Storage.PDFDir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de PDFs")
	}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(docRepo, clientRepo, settingsRepo, pdfGenerator, pdfStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SettingsUC:     settingsUC,
		ClientUC:       clientUC,
		CreateDocument: createDocumentUC,
		PDFUC:          pdfUC,
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
