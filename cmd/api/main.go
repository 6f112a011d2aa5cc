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
	"github.com/redis/go-redis/v9"

	"github.com/piotrmaz/nvpApp/internal/application/circulation"
	"github.com/piotrmaz/nvpApp/internal/application/consumable"
	"github.com/piotrmaz/nvpApp/internal/application/reconciliation"
	"github.com/piotrmaz/nvpApp/internal/application/report"
	"github.com/piotrmaz/nvpApp/internal/application/usecase"
	infrapdf "github.com/piotrmaz/nvpApp/internal/infrastructure/pdf"
	"github.com/piotrmaz/nvpApp/internal/infrastructure/postgres"
	"github.com/piotrmaz/nvpApp/internal/infrastructure/rediscache"
	httpRouter "github.com/piotrmaz/nvpApp/internal/interfaces/http"
	"github.com/piotrmaz/nvpApp/pkg/config"
	"github.com/piotrmaz/nvpApp/pkg/logger"
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

	// Repositorios sobre el pool (lecturas fuera de transacción)
	consumableRepo := postgres.NewConsumableRepository(pool)
	consumptionRepo := postgres.NewConsumptionRepository(pool)
	consDeliveryRepo := postgres.NewConsumableDeliveryRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	pkgDeliveryRepo := postgres.NewPackageDeliveryRepository(pool)
	pkgSendRepo := postgres.NewPackageSendRepository(pool)
	pkgReceiveRepo := postgres.NewPackageReceiveRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	parcelRepo := postgres.NewParcelRepository(pool)
	conditionRepo := postgres.NewConditionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de lectura opcional (stock bajo)
	var readCache reconciliation.ReadCache
	var invalidator consumable.CacheInvalidator
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		cache := rediscache.NewCache(redisClient)
		readCache = cache
		invalidator = cache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché Redis habilitada")
	}

	// Ledgers y consultas
	consumableLedger := consumable.NewLedgerUseCase(txRunner, supplierRepo, invalidator)
	packageLedger := circulation.NewLedgerUseCase(txRunner, supplierRepo, conditionRepo)
	queryUC := reconciliation.NewQueryUseCase(
		consumableRepo, consumptionRepo, consDeliveryRepo,
		packageRepo, pkgDeliveryRepo, pkgSendRepo, pkgReceiveRepo,
		readCache,
	)

	// CRUD
	consumableUC := usecase.NewConsumableUseCase(consumableRepo, unitRepo, supplierRepo, txRunner)
	packageUC := usecase.NewPackageUseCase(packageRepo, parcelRepo, txRunner)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	parcelUC := usecase.NewParcelUseCase(parcelRepo)
	conditionUC := usecase.NewConditionUseCase(conditionRepo)

	// Reporte PDF del almacén
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewPDFUseCase(consumableRepo, packageRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NVP Almacén API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConsumableUC:     consumableUC,
		ConsumableLedger: consumableLedger,
		PackageUC:        packageUC,
		PackageLedger:    packageLedger,
		QueryUC:          queryUC,
		ReportUC:         reportUC,
		SupplierUC:       supplierUC,
		UnitUC:           unitUC,
		ParcelUC:         parcelUC,
		ConditionUC:      conditionUC,
		JWTSecret:        cfg.JWT.Secret,
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
