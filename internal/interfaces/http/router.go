package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Fabrica-api/internal/application/auth"
	"github.com/jhoicas/Fabrica-api/internal/application/stock"
	"github.com/jhoicas/Fabrica-api/internal/application/usecase"
	"github.com/jhoicas/Fabrica-api/internal/application/workorder"
	"github.com/jhoicas/Fabrica-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC   *usecase.AccountUseCase
	ProductUC   *usecase.ProductUseCase
	PlateUC     *usecase.PlateUseCase
	WorkOrderUC *workorder.UseCase
	StockUC     *stock.UseCase
	DeliveryUC  *usecase.DeliveryUseCase
	QuoteUC     *usecase.QuoteUseCase
	AuthUC      *auth.UseCase
	Sheets      SheetGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público sólo el login; el registro lo gestiona un administrador)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Usuarios (protegido, sólo administración)
	users := protected.Group("/users", RequirePermission(entity.PermUserManage))
	users.Post("/", authHandler.Register)
	users.Get("/", authHandler.ListUsers)
	users.Patch("/:id", authHandler.UpdateUser)
	users.Delete("/:id", authHandler.DeleteUser)

	// Clientes (protegido)
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", RequirePermission(entity.PermAccountRead), accountHandler.List)
	accounts.Get("/:id", RequirePermission(entity.PermAccountRead), accountHandler.GetByID)
	accounts.Post("/", RequirePermission(entity.PermAccountWrite), accountHandler.Create)
	accounts.Patch("/:id", RequirePermission(entity.PermAccountWrite), accountHandler.Update)
	accounts.Delete("/", RequirePermission(entity.PermAccountWrite), accountHandler.Delete)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission(entity.PermProductRead), productHandler.List)
	products.Get("/:id", RequirePermission(entity.PermProductRead), productHandler.GetByID)
	products.Post("/", RequirePermission(entity.PermProductWrite), productHandler.Create)
	products.Patch("/:id", RequirePermission(entity.PermProductWrite), productHandler.Update)
	products.Delete("/", RequirePermission(entity.PermProductWrite), productHandler.Delete)

	// Planchas (protegido)
	plates := protected.Group("/plates")
	plateHandler := NewPlateHandler(deps.PlateUC)
	plates.Get("/", RequirePermission(entity.PermPlateRead), plateHandler.List)
	plates.Get("/:id", RequirePermission(entity.PermPlateRead), plateHandler.GetByID)
	plates.Post("/", RequirePermission(entity.PermPlateWrite), plateHandler.Create)
	plates.Patch("/:id", RequirePermission(entity.PermPlateWrite), plateHandler.Update)
	plates.Delete("/", RequirePermission(entity.PermPlateWrite), plateHandler.Delete)

	// Órdenes de trabajo (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC, deps.Sheets)
	workOrders.Get("/", RequirePermission(entity.PermWorkOrderRead), workOrderHandler.List)
	workOrders.Get("/deadline", RequirePermission(entity.PermWorkOrderRead), workOrderHandler.ByDeadline)
	workOrders.Get("/need-plate", RequirePermission(entity.PermWorkOrderRead), workOrderHandler.NeedPlate)
	workOrders.Get("/stats", RequirePermission(entity.PermWorkOrderRead), workOrderHandler.Stats)
	workOrders.Get("/product/:productId", RequirePermission(entity.PermWorkOrderRead), workOrderHandler.ByProduct)
	workOrders.Get("/:id", RequirePermission(entity.PermWorkOrderRead), workOrderHandler.GetByID)
	workOrders.Get("/:id/sheet", RequirePermission(entity.PermWorkOrderRead), workOrderHandler.Sheet)
	workOrders.Post("/", RequirePermission(entity.PermWorkOrderWrite), workOrderHandler.Create)
	workOrders.Post("/import", RequirePermission(entity.PermWorkOrderWrite), workOrderHandler.Import)
	workOrders.Patch("/complete", RequirePermission(entity.PermWorkOrderClose), workOrderHandler.Complete)
	workOrders.Patch("/bulk", RequirePermission(entity.PermWorkOrderWrite), workOrderHandler.BulkUpdate)
	workOrders.Patch("/:id", RequirePermission(entity.PermWorkOrderWrite), workOrderHandler.Update)
	workOrders.Delete("/", RequirePermission(entity.PermWorkOrderWrite), workOrderHandler.Delete)

	// Stock (protegido)
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", RequirePermission(entity.PermStockRead), stockHandler.List)
	stocks.Get("/:id/history", RequirePermission(entity.PermStockRead), stockHandler.History)
	stocks.Patch("/", RequirePermission(entity.PermStockAdjust), stockHandler.Adjust)

	// Entregas (protegido)
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Get("/", RequirePermission(entity.PermDeliveryRead), deliveryHandler.List)
	deliveries.Post("/", RequirePermission(entity.PermDeliveryWrite), deliveryHandler.Create)
	deliveries.Patch("/:id", RequirePermission(entity.PermDeliveryWrite), deliveryHandler.Update)
	deliveries.Delete("/", RequirePermission(entity.PermDeliveryWrite), deliveryHandler.Delete)

	// Cotizaciones (protegido)
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes.Get("/", RequirePermission(entity.PermQuoteRead), quoteHandler.List)
	quotes.Get("/:id", RequirePermission(entity.PermQuoteRead), quoteHandler.GetByID)
	quotes.Post("/", RequirePermission(entity.PermQuoteWrite), quoteHandler.Create)
	quotes.Patch("/:id", RequirePermission(entity.PermQuoteWrite), quoteHandler.Update)
	quotes.Delete("/", RequirePermission(entity.PermQuoteWrite), quoteHandler.Delete)
}
