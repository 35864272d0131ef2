package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/almacen-api/internal/application/auth"
	"github.com/jcamargo/almacen-api/internal/application/operations"
	"github.com/jcamargo/almacen-api/internal/application/usecase"
)

// validate instancia compartida para los DTOs de entrada.
var validate = validator.New()

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	LocationUC   *usecase.LocationUseCase
	DashboardUC  *usecase.DashboardUseCase
	OperationsUC *operations.UseCase
	AuthUC       *auth.UseCase
	AppEnv       string
}

// Router registra las rutas de la API. El login vive fuera de /api por
// compatibilidad con el frontend heredado.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.AppEnv)
	app.Post("/login", authHandler.Login)

	api := app.Group("/api")

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)

	// Receipts
	receipts := api.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.OperationsUC)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Post("/", receiptHandler.Create)
	receipts.Put("/:id/validate", receiptHandler.Validate)

	// Deliveries
	deliveries := api.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.OperationsUC)
	deliveries.Get("/", deliveryHandler.List)
	deliveries.Get("/:id", deliveryHandler.GetByID)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Put("/:id/validate", deliveryHandler.Validate)

	// Locations
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Post("/", locationHandler.Create)

	// Internal transfers
	transfers := api.Group("/internal-transfers")
	transferHandler := NewTransferHandler(deps.OperationsUC)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", transferHandler.Create)
	transfers.Put("/:id/validate", transferHandler.Validate)

	// Recuperación de contraseña (OTP)
	api.Post("/request-otp", authHandler.RequestOTP)
	api.Post("/verify-otp", authHandler.VerifyOTP)
	api.Post("/reset-password", authHandler.ResetPassword)
}
