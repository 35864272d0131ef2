package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/jcamargo/almacen-api/internal/application/auth"
	"github.com/jcamargo/almacen-api/internal/application/operations"
	"github.com/jcamargo/almacen-api/internal/application/usecase"
	"github.com/jcamargo/almacen-api/internal/infrastructure/jsonstore"
	httpRouter "github.com/jcamargo/almacen-api/internal/interfaces/http"
	"github.com/jcamargo/almacen-api/pkg/config"
	"github.com/jcamargo/almacen-api/pkg/logger"
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
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	store := jsonstore.New(afero.NewOsFs(), cfg.Store.DataDir, log)

	productRepo := jsonstore.NewProductRepository(store)
	operationRepo := jsonstore.NewOperationRepository(store)
	locationRepo := jsonstore.NewLocationRepository(store)
	userRepo := jsonstore.NewUserRepository(store)
	otpRepo := jsonstore.NewOTPRepository(store)

	productUC := usecase.NewProductUseCase(productRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, operationRepo)
	operationsUC := operations.NewUseCase(operationRepo, productRepo, locationRepo, log)
	authUC := auth.NewUseCase(userRepo, otpRepo, time.Duration(cfg.OTP.TTLMinutes)*time.Minute, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacen API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		LocationUC:   locationUC,
		DashboardUC:  dashboardUC,
		OperationsUC: operationsUC,
		AuthUC:       authUC,
		AppEnv:       cfg.App.Env,
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
