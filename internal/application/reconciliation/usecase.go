package reconciliation

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/domain"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// QueryUseCase lado de lectura del ledger: reconstruye el historial de
// eventos por entidad y deriva el listado de stock bajo. Solo lectura,
// idempotente, sin efectos secundarios sobre los saldos.
type QueryUseCase struct {
	consumableRepo   repository.ConsumableRepository
	consumptionRepo  repository.ConsumptionRepository
	consDeliveryRepo repository.ConsumableDeliveryRepository
	packageRepo      repository.PackageRepository
	pkgDeliveryRepo  repository.PackageDeliveryRepository
	pkgSendRepo      repository.PackageSendRepository
	pkgReceiveRepo   repository.PackageReceiveRepository
	cache            ReadCache // opcional
	cacheTTL         time.Duration
}

// NewQueryUseCase construye el servicio de consulta. cache puede ser nil.
func NewQueryUseCase(
	consumableRepo repository.ConsumableRepository,
	consumptionRepo repository.ConsumptionRepository,
	consDeliveryRepo repository.ConsumableDeliveryRepository,
	packageRepo repository.PackageRepository,
	pkgDeliveryRepo repository.PackageDeliveryRepository,
	pkgSendRepo repository.PackageSendRepository,
	pkgReceiveRepo repository.PackageReceiveRepository,
	cache ReadCache,
) *QueryUseCase {
	return &QueryUseCase{
		consumableRepo:   consumableRepo,
		consumptionRepo:  consumptionRepo,
		consDeliveryRepo: consDeliveryRepo,
		packageRepo:      packageRepo,
		pkgDeliveryRepo:  pkgDeliveryRepo,
		pkgSendRepo:      pkgSendRepo,
		pkgReceiveRepo:   pkgReceiveRepo,
		cache:            cache,
		cacheTTL:         30 * time.Second,
	}
}

// ConsumableHistory devuelve consumos y entregas de un consumible en una
// sola secuencia, más reciente primero.
func (uc *QueryUseCase) ConsumableHistory(ctx context.Context, consumableID string) (*dto.HistoryResponse, error) {
	cons, err := uc.consumableRepo.GetByID(consumableID)
	if err != nil {
		return nil, err
	}
	if cons == nil {
		return nil, domain.ErrNotFound
	}

	consumptions, err := uc.consumptionRepo.ListByConsumable(consumableID)
	if err != nil {
		return nil, err
	}
	deliveries, err := uc.consDeliveryRepo.ListByConsumable(consumableID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.HistoryEntry, 0, len(consumptions)+len(deliveries))
	for _, e := range consumptions {
		entries = append(entries, dto.HistoryEntry{
			ID: e.ID, Kind: "consumption", Quantity: e.Quantity,
			UserID: e.UserID, Date: e.Date,
		})
	}
	for _, e := range deliveries {
		entries = append(entries, dto.HistoryEntry{
			ID: e.ID, Kind: "delivery", Quantity: e.Quantity,
			UserID: e.UserID, SupplierID: e.SupplierID, Date: e.Date,
		})
	}
	sortHistory(entries)
	return &dto.HistoryResponse{Total: len(entries), Entries: entries}, nil
}

// PackageHistory devuelve el historial de entregas de un empaque, más
// reciente primero. Envíos y recepciones se consultan vía PackageMovements.
func (uc *QueryUseCase) PackageHistory(ctx context.Context, packageID string) (*dto.HistoryResponse, error) {
	pkg, err := uc.packageRepo.GetByID(packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}

	deliveries, err := uc.pkgDeliveryRepo.ListByPackage(packageID)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.HistoryEntry, 0, len(deliveries))
	for _, e := range deliveries {
		entries = append(entries, dto.HistoryEntry{
			ID: e.ID, Kind: "delivery", Quantity: e.Quantity,
			UserID: e.UserID, SupplierID: e.SupplierID,
			Description: e.Description, Date: e.Date,
		})
	}
	sortHistory(entries)
	return &dto.HistoryResponse{Total: len(entries), Entries: entries}, nil
}

// PackageMovements devuelve la unión de los tres tipos de evento de un
// empaque ordenada por fecha, más reciente primero.
func (uc *QueryUseCase) PackageMovements(ctx context.Context, packageID string) (*dto.HistoryResponse, error) {
	pkg, err := uc.packageRepo.GetByID(packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}

	deliveries, err := uc.pkgDeliveryRepo.ListByPackage(packageID)
	if err != nil {
		return nil, err
	}
	sends, err := uc.pkgSendRepo.ListByPackage(packageID)
	if err != nil {
		return nil, err
	}
	receives, err := uc.pkgReceiveRepo.ListByPackage(packageID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.HistoryEntry, 0, len(deliveries)+len(sends)+len(receives))
	for _, e := range deliveries {
		entries = append(entries, dto.HistoryEntry{
			ID: e.ID, Kind: "delivery", Quantity: e.Quantity,
			UserID: e.UserID, SupplierID: e.SupplierID,
			Description: e.Description, Date: e.Date,
		})
	}
	for _, e := range sends {
		entries = append(entries, dto.HistoryEntry{
			ID: e.ID, Kind: "send", Quantity: e.Quantity,
			UserID: e.UserID, SupplierID: e.SupplierID,
			Description: e.Description, Date: e.Date,
		})
	}
	for _, e := range receives {
		entries = append(entries, dto.HistoryEntry{
			ID: e.ID, Kind: "receive", Quantity: e.Quantity,
			UserID: e.UserID, SupplierID: e.SupplierID,
			ConditionID: e.ConditionID, Description: e.Description, Date: e.Date,
		})
	}
	sortHistory(entries)
	return &dto.HistoryResponse{Total: len(entries), Entries: entries}, nil
}

// LowStock devuelve los consumibles con on_hand < min_stock ordenados por
// déficit. Pasa primero por el caché de lectura si está configurado.
func (uc *QueryUseCase) LowStock(ctx context.Context) (*dto.LowStockResponse, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, LowStockCacheKey); err == nil && raw != nil {
			var cached dto.LowStockResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	list, err := uc.consumableRepo.ListBelowMinStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.LowStockItem{
			ConsumableID: c.ID,
			Name:         c.Name,
			OnHand:       c.OnHand,
			MinStock:     c.MinStock,
			Deficit:      c.MinStock - c.OnHand,
		})
	}
	out := &dto.LowStockResponse{Total: len(items), Items: items}

	if uc.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			_ = uc.cache.Set(ctx, LowStockCacheKey, raw, uc.cacheTTL)
		}
	}
	return out, nil
}

// sortHistory ordena más reciente primero; a igual fecha desempata por ID
// descendente para que la relectura sea estable.
func sortHistory(entries []dto.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].ID > entries[j].ID
	})
}
