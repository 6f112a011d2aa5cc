package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/piotrmaz/nvpApp/internal/application/circulation"
	"github.com/piotrmaz/nvpApp/internal/application/consumable"
	"github.com/piotrmaz/nvpApp/internal/application/reconciliation"
	"github.com/piotrmaz/nvpApp/internal/application/report"
	"github.com/piotrmaz/nvpApp/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConsumableUC     *usecase.ConsumableUseCase
	ConsumableLedger *consumable.LedgerUseCase
	PackageUC        *usecase.PackageUseCase
	PackageLedger    *circulation.LedgerUseCase
	QueryUC          *reconciliation.QueryUseCase
	ReportUC         *report.PDFUseCase
	SupplierUC       *usecase.SupplierUseCase
	UnitUC           *usecase.UnitUseCase
	ParcelUC         *usecase.ParcelUseCase
	ConditionUC      *usecase.ConditionUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Todas las rutas requieren Bearer Token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Consumibles (cualquier usuario autenticado)
	consumables := protected.Group("/consumables")
	consumableHandler := NewConsumableHandler(deps.ConsumableUC, deps.ConsumableLedger, deps.QueryUC)
	consumables.Post("/", consumableHandler.Create)
	consumables.Get("/", consumableHandler.List)
	consumables.Get("/low-stock", consumableHandler.LowStock)
	consumables.Get("/:id", consumableHandler.GetByID)
	consumables.Delete("/:id", consumableHandler.Delete)
	consumables.Post("/:id/consumption", consumableHandler.RecordConsumption)
	consumables.Post("/:id/delivery", consumableHandler.RecordDelivery)
	consumables.Get("/:id/history", consumableHandler.History)

	// Empaques retornables (solo admin)
	packages := protected.Group("/packages", RequireRole(RoleAdmin))
	packageHandler := NewPackageHandler(deps.PackageUC, deps.PackageLedger, deps.QueryUC)
	packages.Post("/", packageHandler.Create)
	packages.Get("/", packageHandler.List)
	packages.Get("/:id", packageHandler.GetByID)
	packages.Delete("/:id", packageHandler.Delete)
	packages.Post("/:id/delivery", packageHandler.RecordDelivery)
	packages.Post("/:id/send", packageHandler.RecordSend)
	packages.Post("/:id/receive", packageHandler.RecordReceive)
	packages.Get("/:id/history", packageHandler.History)
	packages.Get("/:id/movements", packageHandler.Movements)

	// Tablas de referencia
	referenceHandler := NewReferenceHandler(deps.SupplierUC, deps.UnitUC, deps.ParcelUC, deps.ConditionUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", referenceHandler.CreateSupplier)
	suppliers.Get("/", referenceHandler.ListSuppliers)
	suppliers.Get("/:id", referenceHandler.GetSupplier)

	units := protected.Group("/units")
	units.Post("/", referenceHandler.CreateUnit)
	units.Get("/", referenceHandler.ListUnits)
	units.Get("/:id", referenceHandler.GetUnit)

	parcels := protected.Group("/parcels", RequireRole(RoleAdmin))
	parcels.Post("/", referenceHandler.CreateParcel)
	parcels.Get("/", referenceHandler.ListParcels)
	parcels.Get("/:id", referenceHandler.GetParcel)

	conditions := protected.Group("/conditions", RequireRole(RoleAdmin))
	conditions.Post("/", referenceHandler.CreateCondition)
	conditions.Get("/", referenceHandler.ListConditions)
	conditions.Get("/:id", referenceHandler.GetCondition)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stockroom", reportHandler.Stockroom)
}
