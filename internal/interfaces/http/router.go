package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/logitrack/internal/application/analytics"
	"github.com/tu-usuario/logitrack/internal/application/auth"
	"github.com/tu-usuario/logitrack/internal/application/transfer"
	"github.com/tu-usuario/logitrack/internal/application/usecase"
	"github.com/tu-usuario/logitrack/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SendOp      *transfer.SendOperation
	ReceiveOp   *transfer.ReceiveOperation
	WarehouseUC *usecase.WarehouseUseCase
	TransportUC *usecase.TransportUseCase
	ProductUC   *usecase.ProductUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Transferencias: despachar exige rol de bodega, recibir también lo
	// puede hacer el transportista
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.SendOp, deps.ReceiveOp)
	transfers.Post("/send", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), transferHandler.Send)
	transfers.Post("/receive", RequireRole(entity.RoleAdmin, entity.RoleBodeguero, entity.RoleTransportista), transferHandler.Receive)

	// Bodegas (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireRole(entity.RoleAdmin), warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Tránsito (protegido)
	transports := protected.Group("/transports")
	transportHandler := NewTransportHandler(deps.TransportUC)
	transports.Get("/", transportHandler.List)
	transports.Get("/:route", transportHandler.GetByRoute)

	// Catálogo (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
