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

	"github.com/jhoicas/Fabrica-api/internal/application/auth"
	appstock "github.com/jhoicas/Fabrica-api/internal/application/stock"
	"github.com/jhoicas/Fabrica-api/internal/application/usecase"
	appwo "github.com/jhoicas/Fabrica-api/internal/application/workorder"
	infrapdf "github.com/jhoicas/Fabrica-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Fabrica-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Fabrica-api/internal/interfaces/http"
	"github.com/jhoicas/Fabrica-api/pkg/config"
	"github.com/jhoicas/Fabrica-api/pkg/logger"
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

	accountRepo := postgres.NewAccountRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	plateRepo := postgres.NewPlateRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	seqRepo := postgres.NewWorkOrderSeqRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	historyRepo := postgres.NewStockHistoryRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	allocator := appwo.NewSequenceAllocator(seqRepo)
	workOrderUC := appwo.NewUseCase(txRunner, allocator, workOrderRepo, productRepo, log)
	stockUC := appstock.NewUseCase(txRunner, stockRepo, historyRepo, productRepo, log)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	productUC := usecase.NewProductUseCase(productRepo, accountRepo)
	plateUC := usecase.NewPlateUseCase(plateRepo, productRepo)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, productRepo, workOrderRepo, txRunner, log)
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, accountRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: hoja de producción imprimible de la orden de trabajo
	sheetGenerator := infrapdf.NewWorkOrderSheetGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fábrica API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:   accountUC,
		ProductUC:   productUC,
		PlateUC:     plateUC,
		WorkOrderUC: workOrderUC,
		StockUC:     stockUC,
		DeliveryUC:  deliveryUC,
		QuoteUC:     quoteUC,
		AuthUC:      authUC,
		Sheets:      sheetGenerator,
		JWTSecret:   cfg.JWT.Secret,
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
